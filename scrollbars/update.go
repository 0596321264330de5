package scrollbars

import (
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/dom/style/css"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/lifecycle"
)

// Update positions the handle of a scrollbar for the current overflow state
// and scroll offset. The handle's length is written as a percentage of the
// track, its offset as a translate transform. Horizontal handles of
// right-to-left elements move leftwards from the right edge.
//
// If the handle is driven by a scroll timeline, only the length is written.
// Nothing is written if the handle's style would not change.
func Update(s *Structure, state lifecycle.StructureSetupState, scrollElm dom.Element,
	e *env.Environment, isRTL, timelineDriven bool) {
	//
	h := s.Horizontal
	length := LengthRatio(state.OverflowEdge.Axis(h), state.OverflowAmount.Axis(h))
	lengthKey := "height"
	if h {
		lengthKey = "width"
	}
	b := style.NewBuilder().Set(lengthKey, css.Percent(length))
	if !timelineDriven {
		raw := scrollElm.ScrollTop()
		if h {
			raw = scrollElm.ScrollLeft()
		}
		rtl := isRTL && h
		offset := OffsetRatio(raw, state.OverflowAmount.Axis(h), length, rtl, e.RTLScrollBehavior())
		if rtl {
			offset = -offset
		}
		b.Set("transform", css.TranslatePercent(css.Percent(offset), h))
	}
	patch := b.Build()
	if patch.Equal(s.handle) {
		return
	}
	tracer().Debugf("scrollbars: handle %s", patch)
	s.Handle.ApplyStyle(patch)
	s.handle = patch
}
