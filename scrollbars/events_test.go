package scrollbars_test

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/memdom"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/lifecycle"
	"github.com/npillmayer/overlayscroll/plugins"
	"github.com/npillmayer/overlayscroll/scrollbars"
)

type scene struct {
	doc                      *memdom.Document
	host, viewport           *memdom.Element
	scrollbar, track, handle *memdom.Element
	structure                *scrollbars.Structure
	gesture                  *scrollbars.Gesture
}

var allPointers = []string{"mouse", "pen", "touch"}

// newScene creates a horizontal scrollbar with a 100px track and a 50px
// handle over a viewport with 200px of horizontal overflow.
func newScene(t *testing.T, e *env.Environment, opts scrollbars.Options, reg *plugins.Registry,
	timeline bool) *scene {
	//
	doc := memdom.New()
	sc := &scene{doc: doc, host: doc.Div("os-host"), viewport: doc.Div("os-viewport")}
	doc.Body().Append(sc.host.Append(sc.viewport))
	sc.viewport.SetLayout(memdom.Layout{
		Client: ovs.WH[float64]{W: 100, H: 100},
		Scroll: ovs.WH[float64]{W: 300, H: 100},
		Offset: ovs.WH[float64]{W: 100, H: 100},
		Rect:   dom.Rect{Width: 100, Height: 100},
	})
	sc.structure = scrollbars.NewStructure(doc, true)
	sc.host.Prepend(sc.structure.Scrollbar)
	sc.scrollbar = sc.structure.Scrollbar.(*memdom.Element)
	sc.track = sc.structure.Track.(*memdom.Element)
	sc.handle = sc.structure.Handle.(*memdom.Element)
	sc.track.SetLayout(memdom.Layout{
		Offset: ovs.WH[float64]{W: 100, H: 10},
		Rect:   dom.Rect{Width: 100, Height: 10},
	})
	sc.handle.SetLayout(memdom.Layout{
		Offset: ovs.WH[float64]{W: 50, H: 10},
		Rect:   dom.Rect{Width: 50, Height: 10},
	})
	state := func() lifecycle.StructureSetupState {
		return lifecycle.StructureSetupState{
			OverflowAmount: ovs.XY[float64]{X: 200},
			OverflowEdge:   ovs.XY[float64]{X: 100, Y: 100},
		}
	}
	var tl dom.Timeline
	if timeline {
		tl = doc.NewScrollTimeline(sc.viewport, true)
	}
	events := scrollbars.NewEvents(opts, state, e, reg)
	sc.gesture = events.Attach(sc.structure, scrollbars.ClassToggler(sc.structure),
		doc, sc.host, sc.viewport, tl, true)
	require.Equal(t, scrollbars.Idle, sc.gesture.State())
	return sc
}

func (sc *scene) pointer(target *memdom.Element, typ string, x float64, shift bool) {
	sc.doc.Pointer(target, typ, dom.PointerEvent{
		PointerID: 1, IsPrimary: true, ClientX: x, ShiftKey: shift,
	})
}

func TestWheelDebounce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{DragScroll: true, Pointers: allPointers}, nil, false)
	defer sc.gesture.Destroy()
	clock := sc.doc.Clock()
	ev := sc.doc.Wheel(sc.scrollbar, 0, 20, dom.DeltaPixel)
	assert.True(t, ev.DefaultPrevented(), "wheel on scrollbar must be swallowed")
	assert.Equal(t, 1, sc.viewport.ScrollByCalls())
	assert.True(t, sc.scrollbar.HasClass(scrollbars.ClassNameScrollbarWheel))
	clock.Advance(50 * time.Millisecond)
	sc.doc.Wheel(sc.scrollbar, 0, 20, dom.DeltaPixel)
	assert.Equal(t, 1, sc.viewport.ScrollByCalls(), "second tick within the window")
	clock.Advance(400 * time.Millisecond)
	assert.False(t, sc.scrollbar.HasClass(scrollbars.ClassNameScrollbarWheel))
	sc.doc.Wheel(sc.scrollbar, 0, 20, dom.DeltaPixel)
	assert.Equal(t, 2, sc.viewport.ScrollByCalls(), "new window re-triggers the compensation")
	sc.doc.Wheel(sc.scrollbar, 0, 1, dom.DeltaLine)
	assert.Equal(t, 2, sc.viewport.ScrollByCalls(), "line deltas are not compensated")
}

func TestWheelWithoutScrollBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(env.WithScrollBy(false)), scrollbars.Options{}, nil, false)
	sc.doc.Wheel(sc.scrollbar, 0, 20, dom.DeltaPixel)
	assert.Equal(t, 0, sc.viewport.ScrollByCalls())
	sc.gesture.Destroy()
	assert.Equal(t, 0, sc.doc.Clock().Pending(), "destroy cancels the wheel timer")
}

func TestDragScroll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{DragScroll: true, Pointers: allPointers}, nil, false)
	defer sc.gesture.Destroy()
	docListeners := sc.doc.ListenerCount()
	sc.pointer(sc.handle, "pointerdown", 10, false)
	assert.Equal(t, scrollbars.DragScroll, sc.gesture.State())
	assert.True(t, sc.handle.HasPointerCapture(1))
	v, _ := sc.host.Attr(scrollbars.DataAttributeHost)
	assert.Equal(t, scrollbars.DataValueHostScrollbarPressed, v)
	// 25px of pointer movement on a 50px track difference scrolls half of 200px
	sc.pointer(sc.track, "pointermove", 35, false)
	assert.Equal(t, 100.0, sc.viewport.ScrollLeft())
	sc.pointer(sc.track, "pointerup", 35, false)
	assert.Equal(t, scrollbars.Idle, sc.gesture.State())
	assert.False(t, sc.handle.HasPointerCapture(1))
	assert.Equal(t, docListeners, sc.doc.ListenerCount())
	_, pressed := sc.host.Attr(scrollbars.DataAttributeHost)
	assert.False(t, pressed)
	sc.pointer(sc.track, "pointermove", 80, false)
	assert.Equal(t, 100.0, sc.viewport.ScrollLeft(), "moves after release are ignored")
}

func TestDragScrollRTL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(env.WithRTLScrollBehavior(env.RTLInverted)),
		scrollbars.Options{DragScroll: true, Pointers: allPointers}, nil, false)
	defer sc.gesture.Destroy()
	sc.host.SetAttr("dir", "rtl")
	sc.viewport.SetScrollLeft(150)
	sc.pointer(sc.handle, "pointerdown", 50, false)
	sc.pointer(sc.track, "pointermove", 75, false)
	// moving right approaches the start edge, which is offset 0 when inverted
	assert.Equal(t, 50.0, sc.viewport.ScrollLeft())
	sc.pointer(sc.track, "pointerup", 75, false)
}

func TestDestroyDuringDrag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{DragScroll: true, Pointers: allPointers}, nil, false)
	sc.pointer(sc.handle, "pointerdown", 10, false)
	require.True(t, sc.handle.HasPointerCapture(1))
	sc.gesture.Destroy()
	assert.False(t, sc.handle.HasPointerCapture(1), "destroy releases a held pointer capture")
	assert.Equal(t, scrollbars.Idle, sc.gesture.State())
	_, pressed := sc.host.Attr(scrollbars.DataAttributeHost)
	assert.False(t, pressed)
	sc.pointer(sc.track, "pointermove", 60, false)
	assert.Equal(t, 0.0, sc.viewport.ScrollLeft())
}

func TestInstantClickScroll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{ClickScroll: true, Pointers: allPointers}, nil, false)
	defer sc.gesture.Destroy()
	// handle center at 25, pointer at 50: jump by 25px of 50px track difference
	sc.pointer(sc.track, "pointerdown", 50, true)
	assert.Equal(t, scrollbars.InstantClickScroll, sc.gesture.State())
	assert.True(t, sc.track.HasPointerCapture(1))
	assert.Equal(t, 100.0, sc.viewport.ScrollLeft())
	sc.pointer(sc.track, "pointermove", 60, true)
	assert.Equal(t, 140.0, sc.viewport.ScrollLeft())
	sc.pointer(sc.track, "pointercancel", 60, true)
	assert.Equal(t, scrollbars.Idle, sc.gesture.State())
}

type spyPlugin struct {
	starts, offs int
	startOffset  float64
	handleOffset func() float64
}

func (p *spyPlugin) Start(move func(float64), handleOffset func() float64,
	startOffset, handleLength, pointerOffset float64) func() {
	//
	p.starts++
	p.startOffset = startOffset
	p.handleOffset = handleOffset
	move(handleLength)
	return func() { p.offs++ }
}

func TestClickScrollPluginReleasedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	spy := &spyPlugin{}
	reg := plugins.NewRegistry(map[string]interface{}{plugins.ClickScrollName: spy})
	sc := newScene(t, env.New(), scrollbars.Options{ClickScroll: true, Pointers: allPointers}, reg, false)
	defer sc.gesture.Destroy()
	sc.pointer(sc.track, "pointerdown", 90, false)
	require.Equal(t, scrollbars.ClickScroll, sc.gesture.State())
	assert.Equal(t, 1, spy.starts)
	assert.Equal(t, 65.0, spy.startOffset)
	assert.Equal(t, 0.0, spy.handleOffset())
	assert.Equal(t, 200.0, sc.viewport.ScrollLeft(), "plugin moved the handle a full length")
	// pointerup bubbles from the track to the document
	sc.pointer(sc.track, "pointerup", 90, false)
	sc.doc.Pointer(sc.track, "lostpointercapture", dom.PointerEvent{PointerID: 1})
	sc.pointer(sc.track, "pointerleave", 90, false)
	assert.Equal(t, 1, spy.offs, "gesture must be released exactly once")
	assert.Equal(t, scrollbars.Idle, sc.gesture.State())
}

func TestPointerDownGating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{DragScroll: true, Pointers: []string{"mouse"}}, nil, false)
	defer sc.gesture.Destroy()
	sc.doc.Pointer(sc.handle, "pointerdown", dom.PointerEvent{PointerID: 1, IsPrimary: true, PointerType: "touch"})
	assert.Equal(t, scrollbars.Idle, sc.gesture.State(), "touch is not enabled")
	sc.doc.Pointer(sc.handle, "pointerdown", dom.PointerEvent{PointerID: 1, IsPrimary: true, Button: 2})
	assert.Equal(t, scrollbars.Idle, sc.gesture.State(), "secondary button")
	sc.pointer(sc.track, "pointerdown", 90, false)
	assert.Equal(t, scrollbars.Idle, sc.gesture.State(), "click scroll is disabled")
	_, pressed := sc.host.Attr(scrollbars.DataAttributeHost)
	assert.False(t, pressed)
}

func TestSelectStartPrevented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{DragScroll: true, Pointers: allPointers}, nil, false)
	defer sc.gesture.Destroy()
	sc.pointer(sc.handle, "pointerdown", 10, false)
	assert.False(t, sc.doc.Dispatch(sc.viewport, dom.NewEvent("selectstart")))
	sc.pointer(sc.track, "pointerup", 10, false)
	assert.True(t, sc.doc.Dispatch(sc.viewport, dom.NewEvent("selectstart")))
}

func TestRootClickStopPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{}, nil, false)
	defer sc.gesture.Destroy()
	clicks := 0
	sc.host.On("click", func(dom.Event) { clicks++ })
	sc.doc.Dispatch(sc.track, dom.NewEvent("mousedown"))
	sc.doc.Dispatch(sc.track, dom.NewEvent("click"))
	assert.Equal(t, 0, clicks, "click after scrollbar mousedown is stopped")
	sc.doc.Dispatch(sc.track, dom.NewEvent("click"))
	assert.Equal(t, 1, clicks, "only one click is stopped")
}

func TestInteractionClassAndDestroy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.scrollbars")
	defer teardown()
	//
	sc := newScene(t, env.New(), scrollbars.Options{}, nil, true)
	sc.pointer(sc.scrollbar, "pointerenter", 0, false)
	assert.True(t, sc.scrollbar.HasClass(scrollbars.ClassNameScrollbarInteraction))
	sc.pointer(sc.scrollbar, "pointerleave", 0, false)
	assert.False(t, sc.scrollbar.HasClass(scrollbars.ClassNameScrollbarInteraction))
	require.Len(t, sc.handle.Animations(), 1)
	sc.gesture.Destroy()
	sc.gesture.Destroy()
	assert.Len(t, sc.handle.Animations(), 0, "timeline animation is cancelled")
	assert.Equal(t, 0, sc.scrollbar.ListenerCount())
	assert.Equal(t, 0, sc.track.ListenerCount())
	sc.structure.Destroy()
	assert.Len(t, sc.host.Children(), 1, "only the viewport remains")
}
