package lifecycle

import (
	"math"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/cache"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/dom/style/css"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/options"
)

// OverlaidScrollbarsHideOffset is the gutter pushed out of the viewport for
// platforms with overlaid native scrollbars, which report a thickness of 0.
const OverlaidScrollbarsHideOffset = 42

// ClassNameViewportScrollbarStyling is set on the viewport when native
// scrollbars are hidden by styling them.
const ClassNameViewportScrollbarStyling = "os-viewport-scrollbar-styling"

type contentScrollSizeContext struct {
	viewportSize       ovs.WH[float64]
	viewportScrollSize ovs.WH[float64]
}

type overflowAmountContext struct {
	contentScrollSize ovs.WH[float64]
	viewportSize      ovs.WH[float64]
}

// Overflow is the overflow lifecycle of one instance.
type Overflow struct {
	s                 Structure
	env               *env.Environment
	paddingStyle      func() PaddingStyle
	contentScrollSize *cache.Cache[ovs.WH[float64], contentScrollSizeContext]
	overflowAmount    *cache.Cache[ovs.XY[float64], overflowAmountContext]
	overflowEdge      ovs.XY[float64]
}

// NewOverflow creates an overflow lifecycle for a structure. paddingStyle may
// be nil if the structure layer does not compensate padding.
func NewOverflow(s Structure, e *env.Environment, paddingStyle func() PaddingStyle) *Overflow {
	if paddingStyle == nil {
		paddingStyle = ovs.Const(PaddingStyle{})
	}
	o := &Overflow{s: s, env: e, paddingStyle: paddingStyle}
	o.contentScrollSize = cache.New(o.measureContentScrollSize,
		cache.Equal(ovs.EqualWH[float64]))
	o.overflowAmount = cache.New(computeOverflowAmount,
		cache.Equal(ovs.EqualXY[float64]),
		cache.Initial(ovs.XY[float64]{}))
	return o
}

// State returns a snapshot of the current overflow state.
func (o *Overflow) State() StructureSetupState {
	return StructureSetupState{
		OverflowAmount: o.overflowAmount.Current(false).Value,
		OverflowEdge:   o.overflowEdge,
	}
}

// StateFunc returns a live accessor for the overflow state.
func (o *Overflow) StateFunc() func() StructureSetupState {
	return o.State
}

// content returns the element carrying the content, which is the viewport if
// there is no dedicated content element.
func (o *Overflow) content() dom.Element {
	if o.s.Content != nil {
		return o.s.Content
	}
	return o.s.Viewport
}

func (o *Overflow) measureContentScrollSize(ctx contentScrollSizeContext) ovs.WH[float64] {
	size := o.content().ScrollSize()
	if o.s.Content == nil {
		return size
	}
	return o.fixScrollSizeRounding(size, ctx.viewportSize, ctx.viewportScrollSize)
}

// fixScrollSizeRounding corrects a content scroll size which exceeds the
// viewport's scroll size although the viewport does not report overflow.
// The slack between the viewport's rendered and box-model size, rounded up,
// is subtracted per axis.
func (o *Overflow) fixScrollSizeRounding(content, viewport, viewportScroll ovs.WH[float64]) ovs.WH[float64] {
	fixW := viewport.W == viewportScroll.W && content.W > viewportScroll.W
	fixH := viewport.H == viewportScroll.H && content.H > viewportScroll.H
	if !fixW && !fixH {
		return content
	}
	rect := o.s.Viewport.BoundingClientRect()
	offset := o.s.Viewport.OffsetSize()
	fixed := content
	if fixW {
		fixed.W -= math.Ceil(math.Max(0, rect.Width-offset.W))
	}
	if fixH {
		fixed.H -= math.Ceil(math.Max(0, rect.Height-offset.H))
	}
	tracer().Debugf("lifecycle: rounding fix of content scroll size %v => %v", content, fixed)
	return fixed
}

func computeOverflowAmount(ctx overflowAmountContext) ovs.XY[float64] {
	return ovs.XY[float64]{
		X: math.Max(0, ctx.contentScrollSize.W-ctx.viewportSize.W),
		Y: math.Max(0, ctx.contentScrollSize.H-ctx.viewportSize.H),
	}
}

func clientSizeOf(e dom.Element) ovs.WH[float64] {
	if e == nil {
		return ovs.WH[float64]{}
	}
	return e.ClientSize()
}

// Update runs one reconciliation pass.
func (o *Overflow) Update(hints UpdateHints, checker OptionChecker, force bool) {
	heightIntrinsic := hints.HeightIntrinsic
	showOption := checker.ShowNativeOverlaidScrollbars()
	overlaid := o.env.NativeScrollbarIsOverlaid()
	styling := o.env.NativeScrollbarStyling()
	adjustFlexboxGlue := !o.env.FlexboxGlue() && (hints.SizeChanged || hints.ContentMutation ||
		hints.HostMutation || showOption.Changed || heightIntrinsic.Changed)
	showNative := showOption.Value && overlaid.X && overlaid.Y
	overflowAmount := o.overflowAmount.Current(force)
	contentScrollSize := o.contentScrollSize.Current(force)

	if showOption.Changed && styling {
		if showNative {
			o.s.Viewport.RemoveClass(ClassNameViewportScrollbarStyling)
		} else {
			o.s.Viewport.AddClass(ClassNameViewportScrollbarStyling)
		}
	}
	if adjustFlexboxGlue {
		o.fixFlexboxGlue(o.viewportOverflowState(showNative, nil), heightIntrinsic.Value)
	}
	if hints.SizeChanged || hints.ContentMutation {
		viewportSize := o.s.Viewport.ClientSize()
		viewportScrollSize := o.s.Viewport.ScrollSize()
		contentClientSize := o.content().ClientSize()
		arrangeSize := clientSizeOf(o.s.ContentArrange)
		contentScrollSize = o.contentScrollSize.Update(force, contentScrollSizeContext{
			viewportSize:       viewportSize,
			viewportScrollSize: viewportScrollSize,
		})
		scrollSize := contentScrollSize.Value
		overflowAmount = o.overflowAmount.Update(force, overflowAmountContext{
			contentScrollSize: ovs.WH[float64]{
				W: math.Max(scrollSize.W, arrangeSize.W),
				H: math.Max(scrollSize.H, arrangeSize.H),
			},
			viewportSize: ovs.WH[float64]{
				W: viewportSize.W + math.Max(0, contentClientSize.W-scrollSize.W),
				H: viewportSize.H + math.Max(0, contentClientSize.H-scrollSize.H),
			},
		})
		o.overflowEdge = ovs.XY[float64]{X: viewportSize.W, Y: viewportSize.H}
	}

	overflow := checker.Overflow()
	adjustDirection := hints.DirectionIsRTL.Changed && !styling
	if !(hints.PaddingStyleChanged || contentScrollSize.Changed || overflowAmount.Changed ||
		overflow.Changed || showOption.Changed || adjustDirection || adjustFlexboxGlue) {
		tracer().Debugf("lifecycle: nothing changed")
		return
	}
	tracer().P("amount", overflowAmount.Value).Debugf("lifecycle: applying overflow state")

	viewport := style.NewBuilder().Unset("overflow-x", "overflow-y",
		"margin-top", "margin-right", "margin-bottom", "margin-left", "max-width")
	content := style.NewBuilder().Unset("border-top", "border-right", "border-bottom", "border-left")
	state := o.setViewportOverflowState(showNative, overflowAmount.Value, overflow.Value, viewport)
	padding := o.hideNativeScrollbars(state, hints.DirectionIsRTL.Value, viewport, content)
	arrange := o.contentArrange(state, contentScrollSize.Value, showNative)
	if adjustFlexboxGlue {
		o.fixFlexboxGlue(state, heightIntrinsic.Value)
	}
	o.s.Viewport.ApplyStyle(viewport.Build())
	if o.s.Content != nil {
		o.s.Content.ApplyStyle(content.Build())
	}
	if o.s.ContentArrange != nil {
		o.s.ContentArrange.ApplyStyle(arrange)
	}
	if o.s.Padding != nil {
		o.s.Padding.ApplyStyle(padding)
	}
}

// viewportOverflowState derives the overflow state from the viewport's
// overflow style. If a patch builder is given, its overflow values are used
// instead of the viewport's current style.
func (o *Overflow) viewportOverflowState(showNative bool, viewport *style.Builder) ViewportOverflowState {
	size := o.env.NativeScrollbarSize()
	overlaid := o.env.NativeScrollbarIsOverlaid()
	styling := o.env.NativeScrollbarStyling()
	overlaidHideOffset := 0.0
	if o.s.Content != nil && !styling && !showNative {
		overlaidHideOffset = OverlaidScrollbarsHideOffset
	}
	overflowStyle := o.s.Viewport.Style
	if viewport != nil {
		overflowStyle = viewport.Get
	}
	scroll := ovs.XY[bool]{
		X: overflowStyle("overflow-x") == "scroll",
		Y: overflowStyle("overflow-y") == "scroll",
	}
	hideOffset := func(scroll, overlaid bool, native float64) float64 {
		switch {
		case !scroll || styling:
			return 0
		case overlaid:
			return overlaidHideOffset
		}
		return native
	}
	return ViewportOverflowState{
		OverflowScroll: scroll,
		ScrollbarsHideOffset: ovs.XY[float64]{
			X: hideOffset(scroll.X, overlaid.X, size.X),
			Y: hideOffset(scroll.Y, overlaid.Y, size.Y),
		},
		OverlaidHideOffset: overlaidHideOffset,
	}
}

// setViewportOverflowState decides the CSS overflow per axis and writes it to
// the viewport patch. An axis which stays visible while the other one is
// forced gets `scroll` (for visible-scroll) or `hidden`, so that no browser
// default scrollbar flashes up.
func (o *Overflow) setViewportOverflowState(showNative bool, amount ovs.XY[float64],
	overflow options.Overflow, viewport *style.Builder) ViewportOverflowState {
	//
	perAxis := func(key string, amount float64, behavior css.OverflowBehavior) (bool, style.Property) {
		apply := amount > 0 && behavior.HidesOverflow()
		if apply {
			viewport.Set(key, behavior.Property())
		}
		visibleBehavior := css.OverflowPattern[style.Property](behavior).OneOf(css.OverflowPatterns[style.Property]{
			VisibleScroll: "scroll",
			Default:       "hidden",
			Unset:         "hidden",
			Visible:       "hidden",
			Scroll:        "hidden",
			Hidden:        "hidden",
		})
		return !apply, visibleBehavior
	}
	xVisible, xBehavior := perAxis("overflow-x", amount.X, overflow.X)
	yVisible, yBehavior := perAxis("overflow-y", amount.Y, overflow.Y)
	if xVisible && !yVisible {
		viewport.Set("overflow-x", xBehavior)
	}
	if yVisible && !xVisible {
		viewport.Set("overflow-y", yBehavior)
	}
	return o.viewportOverflowState(showNative, viewport)
}

// hideNativeScrollbars pushes native scrollbar gutters out of the visible
// viewport with negative margins. Overlaid scrollbars get a transparent border
// on the content element instead of a real gutter. Returns the patch for the
// padding element.
func (o *Overflow) hideNativeScrollbars(state ViewportOverflowState, rtl bool,
	viewport, content *style.Builder) style.Patch {
	//
	overlaid := o.env.NativeScrollbarIsOverlaid()
	pad := o.paddingStyle()
	marginKey, borderKey, hpad := "margin-right", "border-right", pad.MarginRight
	if rtl {
		marginKey, borderKey, hpad = "margin-left", "border-left", pad.MarginLeft
	}
	scroll, hide := state.OverflowScroll, state.ScrollbarsHideOffset
	border := css.TransparentBorder(OverlaidScrollbarsHideOffset)

	// vertical
	viewport.Set("margin-bottom", css.Px(-hide.X+pad.MarginBottom))
	content.SetIf(scroll.X && overlaid.X && state.OverlaidHideOffset != 0, "border-bottom", border)
	// horizontal
	viewport.Set("max-width", css.CalcPercentPlus(100, hide.Y-hpad))
	viewport.Set(marginKey, css.Px(-hide.Y+hpad))
	content.SetIf(scroll.Y && overlaid.Y && state.OverlaidHideOffset != 0, borderKey, border)

	if o.env.NativeScrollbarStyling() {
		return style.Patch{}
	}
	clip := css.Visible()
	if scroll.X || scroll.Y {
		clip = css.Hidden()
	}
	return style.NewBuilder().Set("overflow", clip.Property()).Build()
}

// contentArrange sizes the content-arrange element so that content lays out
// at full size although gutters are pushed out of the viewport.
func (o *Overflow) contentArrange(state ViewportOverflowState, contentScrollSize ovs.WH[float64],
	showNative bool) style.Patch {
	//
	return style.NewBuilder().
		SetIf(state.OverflowScroll.Y && !showNative, "width",
			css.Px(state.OverlaidHideOffset+contentScrollSize.W)).
		SetIf(state.OverflowScroll.X && !showNative, "height",
			css.Px(state.OverlaidHideOffset+contentScrollSize.H)).
		Build()
}

// fixFlexboxGlue clamps the viewport's max height to the host's content box
// for intrinsic heights. Scroll offsets are restored after the mutation.
func (o *Overflow) fixFlexboxGlue(state ViewportOverflowState, heightIntrinsic bool) {
	vp := o.s.Viewport
	left, top := vp.ScrollLeft(), vp.ScrollTop()
	vp.ApplyStyle(style.NewBuilder().Unset("max-height").Build())
	if heightIntrinsic {
		hostRect := o.s.Host.BoundingClientRect()
		bt, _ := o.s.Host.Style("border-top-width").Px()
		bb, _ := o.s.Host.Style("border-bottom-width").Px()
		maxHeight := hostRect.Height - (bt + bb)
		if state.OverflowScroll.X {
			maxHeight += state.ScrollbarsHideOffset.X
		}
		tracer().Debugf("lifecycle: flexbox glue, max-height = %g", maxHeight)
		vp.ApplyStyle(style.NewBuilder().Set("max-height", css.Px(maxHeight)).Build())
	}
	vp.SetScrollLeft(left)
	vp.SetScrollTop(top)
}
