package observers

import (
	"fmt"

	ovs "github.com/npillmayer/overlayscroll"
)

type measurementKind uint8

const (
	kindIntersection measurementKind = iota + 1
	kindDirectSize
)

// Measurement is a single observation of a sentinel element. It is a tagged
// variant:
//
//	type Measurement
//	    = Intersection(ratio, isIntersecting)
//	    | DirectSize(wh)
//
// Which variant an observer produces is decided at construction time from the
// platform's capabilities.
type Measurement struct {
	kind         measurementKind
	ratio        float64
	intersecting bool
	size         ovs.WH[float64]
}

// Intersection creates a measurement from an intersection record.
func Intersection(ratio float64, isIntersecting bool) Measurement {
	return Measurement{kind: kindIntersection, ratio: ratio, intersecting: isIntersecting}
}

// DirectSize creates a measurement from a box size reading.
func DirectSize(size ovs.WH[float64]) Measurement {
	return Measurement{kind: kindDirectSize, size: size}
}

// HeightIntrinsic classifies a measurement. A sentinel which intersects its
// root, or which collapsed to zero height, signals intrinsic height.
func (m Measurement) HeightIntrinsic() bool {
	switch m.kind {
	case kindIntersection:
		return m.intersecting || m.ratio > 0
	case kindDirectSize:
		return m.size.H == 0
	}
	return false
}

func (m Measurement) String() string {
	switch m.kind {
	case kindIntersection:
		return fmt.Sprintf("Intersection(%.3g, %v)", m.ratio, m.intersecting)
	case kindDirectSize:
		return fmt.Sprintf("DirectSize(%gx%g)", m.size.W, m.size.H)
	}
	return "Measurement(?)"
}

// Match starts a pattern match on the measurement:
//
//	var ratio float64
//	var size ovs.WH[float64]
//	switch x := m.Match(); x {
//	case x.Intersection(&ratio, nil): ...
//	case x.DirectSize(&size): ...
//	}
//
// Arguments may be nil if the caller is not interested in the payload.
func (m Measurement) Match() *MMatcher {
	return &MMatcher{m: m}
}

// MMatcher is part of pattern matching for measurements.
type MMatcher struct {
	m Measurement
}

// Intersection matches an intersection measurement and extracts its payload.
func (x *MMatcher) Intersection(ratio *float64, isIntersecting *bool) *MMatcher {
	if x.m.kind != kindIntersection {
		return nil
	}
	if ratio != nil {
		*ratio = x.m.ratio
	}
	if isIntersecting != nil {
		*isIntersecting = x.m.intersecting
	}
	return x
}

// DirectSize matches a size measurement and extracts its payload.
func (x *MMatcher) DirectSize(size *ovs.WH[float64]) *MMatcher {
	if x.m.kind != kindDirectSize {
		return nil
	}
	if size != nil {
		*size = x.m.size
	}
	return x
}
