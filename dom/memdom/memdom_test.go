package memdom_test

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/memdom"
	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/env"
)

func TestTreeAndSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.dom")
	defer teardown()
	//
	doc := memdom.New()
	host := doc.Div("host")
	vp := doc.Div("viewport")
	doc.Body().Append(host.Append(vp))
	if !vp.IsConnected() {
		t.Fatalf("expected viewport to be connected")
	}
	if vp.Parent() != dom.Element(host) {
		t.Errorf("expected parent of viewport to be host")
	}
	if c := vp.Closest(".host"); c != dom.Element(host) {
		t.Errorf("expected closest .host to be host, is %v", c)
	}
	if vp.Closest(".nothing") != nil {
		t.Errorf("expected no match for .nothing")
	}
	sentinel := doc.Div("sentinel")
	vp.Prepend(sentinel)
	if len(vp.Children()) != 1 {
		t.Errorf("expected sentinel to be a child of viewport")
	}
	sentinel.Remove()
	sentinel.Remove()
	if len(vp.Children()) != 0 {
		t.Errorf("expected sentinel to be removed")
	}
}

func TestStyleCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.dom")
	defer teardown()
	//
	doc := memdom.New()
	if err := doc.AddStyleSheet(`.viewport { overflow-x: hidden; } .rtl { direction: rtl; }`); err != nil {
		t.Fatal(err)
	}
	host := doc.Div("host", "rtl")
	vp := doc.Div("viewport")
	doc.Body().Append(host.Append(vp))
	if p := vp.Style("overflow-x"); p != "hidden" {
		t.Errorf("expected overflow-x from stylesheet, have %q", p)
	}
	if !vp.IsRTL() {
		t.Errorf("expected direction to be inherited from host")
	}
	if err := doc.AddStyleSheet(`.viewport { overflow-y: scroll; }`); err != nil {
		t.Fatal(err)
	}
	if p := vp.Style("overflow-y"); p != "scroll" {
		t.Errorf("expected overflow-y from second stylesheet, have %q", p)
	}
	vp.ApplyStyle(style.NewBuilder().Set("overflow-x", "scroll").Set("margin-right", "-17px").Build())
	if p := vp.Style("overflow-x"); p != "scroll" {
		t.Errorf("expected inline style to win, have %q", p)
	}
	if vp.StyleWrites() != 1 {
		t.Errorf("expected 1 style write, have %d", vp.StyleWrites())
	}
	vp.ApplyStyle(style.NewBuilder().Unset("margin-right").Build())
	if p := vp.Inline("margin-right"); !p.IsEmpty() {
		t.Errorf("expected margin-right to be unset, is %q", p)
	}
}

func TestScrollClamping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.dom")
	defer teardown()
	//
	doc := memdom.New(memdom.WithRTLScrollBehavior(env.RTLNegative))
	vp := doc.Div("viewport")
	doc.Body().Append(vp)
	vp.SetLayout(memdom.Layout{
		Client: ovs.WH[float64]{W: 100, H: 100},
		Scroll: ovs.WH[float64]{W: 300, H: 150},
	})
	scrolls := 0
	vp.On("scroll", func(dom.Event) { scrolls++ })
	vp.SetScrollTop(500)
	if vp.ScrollTop() != 50 {
		t.Errorf("expected scroll top clamped to 50, is %v", vp.ScrollTop())
	}
	vp.SetAttr("dir", "rtl")
	vp.SetScrollLeft(-500)
	if vp.ScrollLeft() != -200 {
		t.Errorf("expected negative RTL scroll left of -200, is %v", vp.ScrollLeft())
	}
	if scrolls != 2 {
		t.Errorf("expected 2 scroll events, have %d", scrolls)
	}
}

func TestDispatchPhases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.dom")
	defer teardown()
	//
	doc := memdom.New()
	outer := doc.Div("outer")
	inner := doc.Div("inner")
	doc.Body().Append(outer.Append(inner))
	var trail []string
	doc.On("pointerdown", func(dom.Event) { trail = append(trail, "doc-capture") }, dom.Capture())
	doc.On("pointerdown", func(dom.Event) { trail = append(trail, "doc-bubble") })
	outer.On("pointerdown", func(dom.Event) { trail = append(trail, "outer-capture") }, dom.Capture())
	outer.On("pointerdown", func(dom.Event) { trail = append(trail, "outer-bubble") })
	off := inner.On("pointerdown", func(dom.Event) { trail = append(trail, "target") }, dom.Once())
	defer off()
	doc.Pointer(inner, "pointerdown", dom.PointerEvent{PointerID: 1})
	expected := []string{"doc-capture", "outer-capture", "target", "outer-bubble", "doc-bubble"}
	if len(trail) != len(expected) {
		t.Fatalf("expected trail %v, have %v", expected, trail)
	}
	for i := range expected {
		if trail[i] != expected[i] {
			t.Errorf("expected trail[%d] = %s, have %s", i, expected[i], trail[i])
		}
	}
	if inner.ListenerCount() != 0 {
		t.Errorf("expected once-listener to be removed")
	}
}

func TestPassiveWheel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.dom")
	defer teardown()
	//
	doc := memdom.New()
	e := doc.Div()
	doc.Body().Append(e)
	off := e.On("wheel", func(ev dom.Event) { ev.PreventDefault() })
	if ev := doc.Wheel(e, 0, 10, dom.DeltaPixel); ev.DefaultPrevented() {
		t.Errorf("expected passive wheel listener not to prevent default")
	}
	off()
	e.On("wheel", func(ev dom.Event) { ev.PreventDefault() }, dom.NotPassive())
	if ev := doc.Wheel(e, 0, 10, dom.DeltaPixel); !ev.DefaultPrevented() {
		t.Errorf("expected non-passive wheel listener to prevent default")
	}
}

func TestClockAndObservers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.dom")
	defer teardown()
	//
	doc := memdom.New()
	fired := 0
	cancel := doc.Timers().AfterFunc(100*time.Millisecond, func() { fired++ })
	doc.Clock().Advance(50 * time.Millisecond)
	if fired != 0 {
		t.Errorf("timer fired too early")
	}
	doc.Clock().Advance(50 * time.Millisecond)
	if fired != 1 {
		t.Errorf("expected timer to fire once, fired %d", fired)
	}
	cancel()
	//
	target := doc.Div("target")
	doc.Body().Append(target)
	var records []dom.IntersectionEntry
	io := doc.NewIntersectionObserver(target, func(entries []dom.IntersectionEntry) {
		records = append(records, entries...)
	})
	io.Observe(target)
	doc.SetIntersection(target, 0.5)
	if err := doc.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[1].IntersectionRatio != 0.5 {
		t.Errorf("expected initial and one changed record, have %v", records)
	}
	io.Disconnect()
	if doc.IntersectionObservers() != 0 {
		t.Errorf("expected observer to be disconnected")
	}
}
