package dom

import (
	ovs "github.com/npillmayer/overlayscroll"
)

// Rect is a rectangle as returned by getBoundingClientRect().
// Width and height are never negative for rectangles reported by elements.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Left returns the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Top returns the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns width and height of the rectangle.
func (r Rect) Size() ovs.WH[float64] {
	return ovs.WH[float64]{W: r.Width, H: r.Height}
}

// Start returns the left edge for the horizontal and the top edge for the
// vertical axis.
func (r Rect) Start(horizontal bool) float64 {
	if horizontal {
		return r.Left()
	}
	return r.Top()
}

// Length returns the width for the horizontal and the height for the
// vertical axis.
func (r Rect) Length(horizontal bool) float64 {
	if horizontal {
		return r.Width
	}
	return r.Height
}
