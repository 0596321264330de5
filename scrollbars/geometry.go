package scrollbars

import (
	"math"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/lifecycle"
)

// LengthRatio is the length of a handle relative to its track, for a
// viewport edge size and an overflow amount. It is 1 if there is no
// overflow.
func LengthRatio(edge, amount float64) float64 {
	total := edge + amount
	if total <= 0 || amount <= 0 {
		return 1
	}
	return ovs.Clamp(0, 1, edge/total)
}

// HandleLengthRatio returns the length ratio along one axis. Without an
// overflow state (e.g. before the first reconciliation) the ratio is measured
// from the rendered sizes of handle and track.
func HandleLengthRatio(handle, track dom.Element, horizontal bool,
	state *lifecycle.StructureSetupState) float64 {
	//
	if state != nil {
		return LengthRatio(state.OverflowEdge.Axis(horizontal), state.OverflowAmount.Axis(horizontal))
	}
	handleSize := handle.BoundingClientRect().Length(horizontal)
	trackSize := track.BoundingClientRect().Length(horizontal)
	if trackSize <= 0 {
		return 0
	}
	return ovs.Clamp(0, 1, handleSize/trackSize)
}

// NormalizeRTL maps a raw horizontal scroll offset of a right-to-left element
// to the distance scrolled from the start (right) edge, in [0, limit].
func NormalizeRTL(raw, limit float64, behavior env.RTLScrollBehavior) float64 {
	switch m := behavior.Match(); m {
	case m.Negative():
		return ovs.Clamp(0, limit, -raw)
	case m.Inverted():
		return ovs.Clamp(0, limit, raw)
	}
	return limit - ovs.Clamp(0, limit, raw)
}

// ScrollPercent returns the scroll progress in [0,1] for a raw scroll offset
// and an overflow amount. Offsets outside of [0, amount], e.g. from
// overscrolling, are clamped first. For rtl the progress is counted from the
// start edge.
func ScrollPercent(raw, amount float64, rtl bool, behavior env.RTLScrollBehavior) float64 {
	limit := math.Round(amount)
	if limit <= 0 {
		return 0
	}
	pos := ovs.Clamp(0, limit, raw)
	if rtl {
		pos = NormalizeRTL(raw, limit, behavior)
	}
	return math.Min(1, pos/limit)
}

// OffsetRatio returns the offset of a handle in handle lengths: the track
// space not covered by the handle, distributed by scroll progress. The result
// lies in [0, 1/lengthRatio - 1], which exceeds 1 for handles shorter than
// half of the track.
func OffsetRatio(raw, amount, lengthRatio float64, rtl bool, behavior env.RTLScrollBehavior) float64 {
	if lengthRatio <= 0 {
		return 0
	}
	return (1/lengthRatio - 1) * ScrollPercent(raw, amount, rtl, behavior)
}

// HandleOffsetRatio returns the offset ratio of a handle for the current
// scroll offset of scrollElm. The length ratio is measured from the rendered
// handle and track.
func HandleOffsetRatio(handle, track, scrollElm dom.Element, state lifecycle.StructureSetupState,
	e *env.Environment, isRTL, horizontal bool) float64 {
	//
	raw := scrollElm.ScrollTop()
	if horizontal {
		raw = scrollElm.ScrollLeft()
	}
	length := HandleLengthRatio(handle, track, horizontal, nil)
	return OffsetRatio(raw, state.OverflowAmount.Axis(horizontal), length,
		isRTL && horizontal, e.RTLScrollBehavior())
}
