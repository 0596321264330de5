package lifecycle

import (
	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/cache"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/options"
)

// Structure holds the elements an overflow lifecycle works on. Content and
// ContentArrange are optional and may be nil.
type Structure struct {
	Host           dom.Element
	Padding        dom.Element
	Viewport       dom.Element
	Content        dom.Element
	ContentArrange dom.Element
}

// UpdateHints tell a reconciliation pass what happened since the last one.
type UpdateHints struct {
	DirectionIsRTL      cache.Value[bool]
	HeightIntrinsic     cache.Value[bool]
	SizeChanged         bool
	HostMutation        bool
	ContentMutation     bool
	PaddingStyleChanged bool
}

// OptionChecker hands out options together with a changed flag.
// It is implemented by options.Checker.
type OptionChecker interface {
	Overflow() cache.Value[options.Overflow]
	ShowNativeOverlaidScrollbars() cache.Value[bool]
}

// PaddingStyle holds the margins the structure layer applies to the viewport
// to compensate for the host's padding.
type PaddingStyle struct {
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// StructureSetupState is the overflow state shared with the scrollbars.
// Consumers read it, they never mutate it.
type StructureSetupState struct {
	OverflowAmount ovs.XY[float64] // scrollable distance per axis, ≥ 0
	OverflowEdge   ovs.XY[float64] // visible viewport size per axis
}

// ViewportOverflowState is derived on every pass and never stored.
type ViewportOverflowState struct {
	OverflowScroll       ovs.XY[bool]    // axis has `overflow: scroll`
	ScrollbarsHideOffset ovs.XY[float64] // gutter to push out per axis
	OverlaidHideOffset   float64         // hide offset for overlaid scrollbars, 0 if unused
}
