package overlayscroll

// Number is the constraint for the scalar types of 2-dimensional pairs.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// WH is a width/height pair, used for sizes.
type WH[T any] struct {
	W T
	H T
}

// XY is a pair with one value per axis, used for points, offsets and
// per-axis flags.
type XY[T any] struct {
	X T
	Y T
}

// EqualWH compares two sizes component-wise. There is no epsilon: raw layout
// values are stable across reads within the same frame.
func EqualWH[T comparable](a, b WH[T]) bool {
	return a.W == b.W && a.H == b.H
}

// EqualXY compares two pairs component-wise.
func EqualXY[T comparable](a, b XY[T]) bool {
	return a.X == b.X && a.Y == b.Y
}

// Axis returns the component of p for the horizontal or vertical axis.
func (p XY[T]) Axis(horizontal bool) T {
	if horizontal {
		return p.X
	}
	return p.Y
}

// Axis returns the width for the horizontal and the height for the vertical axis.
func (s WH[T]) Axis(horizontal bool) T {
	if horizontal {
		return s.W
	}
	return s.H
}

// Clamp returns x bounded to [lo, hi]. If lo > hi, lo wins.
func Clamp[T Number](lo, hi, x T) T {
	return max(lo, min(hi, x))
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}
