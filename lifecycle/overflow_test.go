package lifecycle_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/cache"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/memdom"
	"github.com/npillmayer/overlayscroll/dom/style/css"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/lifecycle"
	"github.com/npillmayer/overlayscroll/options"
)

type fixture struct {
	doc                              *memdom.Document
	host, padding, viewport, content *memdom.Element
	overflow                         *lifecycle.Overflow
	checker                          *options.Checker
}

func wh(w, h float64) ovs.WH[float64] {
	return ovs.WH[float64]{W: w, H: h}
}

// newFixture sets up a 100x100 viewport with content of a given size.
func newFixture(e *env.Environment, o options.Options, content ovs.WH[float64]) *fixture {
	doc := memdom.New()
	f := &fixture{
		doc:      doc,
		host:     doc.Div("os-host"),
		padding:  doc.Div("os-padding"),
		viewport: doc.Div("os-viewport"),
		content:  doc.Div("os-content"),
		checker:  options.NewChecker(o),
	}
	doc.Body().Append(f.host.Append(f.padding.Append(f.viewport.Append(f.content))))
	f.host.SetLayout(memdom.Layout{
		Client: wh(100, 100), Offset: wh(100, 100),
		Rect: dom.Rect{Width: 100, Height: 100},
	})
	f.measure(content)
	f.overflow = lifecycle.NewOverflow(lifecycle.Structure{
		Host:     f.host,
		Padding:  f.padding,
		Viewport: f.viewport,
		Content:  f.content,
	}, e, nil)
	return f
}

func (f *fixture) measure(content ovs.WH[float64]) {
	f.viewport.SetLayout(memdom.Layout{
		Client: wh(100, 100), Scroll: content, Offset: wh(100, 100),
		Rect: dom.Rect{Width: 100, Height: 100},
	})
	f.content.SetLayout(memdom.Layout{
		Client: wh(100, 100), Scroll: content, Offset: wh(100, 100),
		Rect: dom.Rect{Width: 100, Height: 100},
	})
}

func (f *fixture) resetCounters() {
	for _, e := range []*memdom.Element{f.host, f.padding, f.viewport, f.content} {
		e.ResetCounters()
	}
}

func (f *fixture) writes() int {
	n := 0
	for _, e := range []*memdom.Element{f.host, f.padding, f.viewport, f.content} {
		n += e.Writes()
	}
	return n
}

func sizeChanged() lifecycle.UpdateHints {
	return lifecycle.UpdateHints{SizeChanged: true}
}

func TestRoundingCorrection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	f := newFixture(env.New(), options.Default(), wh(100, 100))
	f.viewport.SetLayout(memdom.Layout{
		Client: wh(100, 100), Scroll: wh(100, 100), Offset: wh(100, 100),
		Rect: dom.Rect{Width: 100.4, Height: 100},
	})
	f.content.SetLayout(memdom.Layout{Client: wh(100, 100), Scroll: wh(103, 100)})
	f.overflow.Update(sizeChanged(), f.checker, true)
	state := f.overflow.State()
	// corrected content width is 103 - ceil(0.4) = 102
	if state.OverflowAmount.X != 2 || state.OverflowAmount.Y != 0 {
		t.Errorf("expected overflow amount {2,0}, have %v", state.OverflowAmount)
	}
	if state.OverflowEdge.X != 100 {
		t.Errorf("expected overflow edge of 100, have %v", state.OverflowEdge.X)
	}
}

func TestIdempotentSecondPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	f := newFixture(env.New(), options.Default(), wh(300, 100))
	f.overflow.Update(sizeChanged(), f.checker, true)
	if f.viewport.StyleWrites() != 1 {
		t.Errorf("expected first pass to write the viewport once, have %d", f.viewport.StyleWrites())
	}
	f.resetCounters()
	f.overflow.Update(sizeChanged(), f.checker, false)
	if n := f.writes(); n != 0 {
		t.Errorf("expected no DOM writes on second pass, have %d", n)
	}
}

func TestOverflowDecision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	f := newFixture(env.New(), options.Default(), wh(300, 100))
	f.overflow.Update(sizeChanged(), f.checker, true)
	if amount := f.overflow.State().OverflowAmount; amount.X != 200 || amount.Y != 0 {
		t.Fatalf("expected overflow amount {200,0}, have %v", amount)
	}
	expect := map[string]string{
		"overflow-x":    "scroll",
		"overflow-y":    "hidden", // visible axis next to a forced one
		"margin-bottom": "-17px",
		"margin-right":  "0px",
		"max-width":     "calc(100% + 0px)",
	}
	for k, v := range expect {
		if p := f.viewport.Inline(k); string(p) != v {
			t.Errorf("expected viewport %s = %q, is %q", k, v, p)
		}
	}
	if p := f.padding.Inline("overflow"); p != "hidden" {
		t.Errorf("expected padding overflow hidden, is %q", p)
	}
	//
	o := options.Default()
	o.Overflow.Y = css.VisibleScroll()
	f.checker.Set(o)
	f.overflow.Update(lifecycle.UpdateHints{}, f.checker, false)
	if p := f.viewport.Inline("overflow-y"); p != "scroll" {
		t.Errorf("expected visible-scroll axis to become scroll, is %q", p)
	}
	if p := f.viewport.Inline("margin-right"); p != "-17px" {
		t.Errorf("expected vertical gutter to be hidden, margin-right is %q", p)
	}
}

func TestNoOverflowUnforced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	o := options.Default()
	o.Overflow.X = css.Hidden()
	f := newFixture(env.New(), o, wh(100, 100))
	f.overflow.Update(sizeChanged(), f.checker, true)
	for _, k := range []string{"overflow-x", "overflow-y"} {
		if p := f.viewport.Inline(k); !p.IsEmpty() {
			t.Errorf("expected %s to stay unset without overflow, is %q", k, p)
		}
	}
	if p := f.padding.Inline("overflow"); p != "visible" {
		t.Errorf("expected padding overflow visible, is %q", p)
	}
}

func TestOverlaidHideOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	e := env.New(env.WithNativeScrollbarSize(0, 0), env.WithOverlaidScrollbars(true, true))
	f := newFixture(e, options.Default(), wh(300, 100))
	arrange := f.doc.Div("os-content-arrange")
	f.viewport.Append(arrange)
	f.overflow = lifecycle.NewOverflow(lifecycle.Structure{
		Host: f.host, Padding: f.padding, Viewport: f.viewport,
		Content: f.content, ContentArrange: arrange,
	}, e, nil)
	f.overflow.Update(sizeChanged(), f.checker, true)
	if p := f.viewport.Inline("margin-bottom"); p != "-42px" {
		t.Errorf("expected overlaid hide offset of 42px, margin-bottom is %q", p)
	}
	if p := f.content.Inline("border-bottom"); p != "42px solid transparent" {
		t.Errorf("expected transparent border on content, is %q", p)
	}
	if p := arrange.Inline("height"); p != "142px" {
		t.Errorf("expected content arrange height of 142px, is %q", p)
	}
	//
	o := options.Default()
	o.NativeScrollbarsOverlaid.Show = true
	f.checker.Set(o)
	f.overflow.Update(lifecycle.UpdateHints{}, f.checker, false)
	if p := f.viewport.Inline("margin-bottom"); p != "0px" {
		t.Errorf("expected no hide offset with visible native scrollbars, is %q", p)
	}
	if p := f.content.Inline("border-bottom"); !p.IsEmpty() {
		t.Errorf("expected border to be removed, is %q", p)
	}
}

func TestRTLMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	f := newFixture(env.New(), options.Default(), wh(100, 300))
	hints := sizeChanged()
	hints.DirectionIsRTL = cache.Value[bool]{Value: true, Changed: true}
	f.overflow.Update(hints, f.checker, true)
	if p := f.viewport.Inline("margin-left"); p != "-17px" {
		t.Errorf("expected gutter on the left for RTL, margin-left is %q", p)
	}
	if p := f.viewport.Inline("margin-right"); !p.IsEmpty() {
		t.Errorf("expected margin-right to be unset for RTL, is %q", p)
	}
}

func TestFlexboxGlue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	f := newFixture(env.New(env.WithFlexboxGlue(false)), options.Default(), wh(100, 300))
	f.host.SetLayout(memdom.Layout{Offset: wh(100, 202), Rect: dom.Rect{Width: 100, Height: 202}})
	f.host.SetAttr("style", "border-top-width: 1px; border-bottom-width: 1px")
	f.viewport.SetScrollTop(50)
	hints := sizeChanged()
	hints.HeightIntrinsic = cache.Value[bool]{Value: true, Changed: true}
	f.overflow.Update(hints, f.checker, true)
	if p := f.viewport.Inline("max-height"); p != "200px" {
		t.Errorf("expected max-height of 200px, is %q", p)
	}
	if f.viewport.ScrollTop() != 50 {
		t.Errorf("expected scroll offset to be restored, is %v", f.viewport.ScrollTop())
	}
	hints.HeightIntrinsic = cache.Value[bool]{Value: false, Changed: true}
	f.overflow.Update(hints, f.checker, false)
	if p := f.viewport.Inline("max-height"); !p.IsEmpty() {
		t.Errorf("expected max-height to be cleared for extrinsic height, is %q", p)
	}
}

func TestScrollbarStylingClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.lifecycle")
	defer teardown()
	//
	e := env.New(env.WithNativeScrollbarStyling(true), env.WithOverlaidScrollbars(true, true))
	f := newFixture(e, options.Default(), wh(300, 100))
	f.overflow.Update(sizeChanged(), f.checker, true)
	if !f.viewport.HasClass(lifecycle.ClassNameViewportScrollbarStyling) {
		t.Errorf("expected scrollbar styling class on viewport")
	}
	if p := f.viewport.Inline("margin-bottom"); p != "0px" {
		t.Errorf("expected no gutter with native scrollbar styling, is %q", p)
	}
	o := options.Default()
	o.NativeScrollbarsOverlaid.Show = true
	f.checker.Set(o)
	f.overflow.Update(lifecycle.UpdateHints{}, f.checker, false)
	if f.viewport.HasClass(lifecycle.ClassNameViewportScrollbarStyling) {
		t.Errorf("expected scrollbar styling class to be removed")
	}
}
