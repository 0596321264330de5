package scrollbars

import (
	"math"
	"time"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/lifecycle"
	"github.com/npillmayer/overlayscroll/plugins"
)

// WheelDebounce is the inactivity after which the wheel compensation re-arms.
const WheelDebounce = 333 * time.Millisecond

// ReleaseEvents end a gesture.
const ReleaseEvents = "pointerup pointerleave pointercancel lostpointercapture"

// Options configure the interaction with scrollbars.
type Options struct {
	DragScroll  bool
	ClickScroll bool
	Pointers    []string // pointer types which may interact
}

func (o Options) pointerEnabled(pointerType string) bool {
	for _, p := range o.Pointers {
		if p == pointerType {
			return true
		}
	}
	return false
}

// GestureState is the state of the interaction state machine.
type GestureState uint8

// States of a gesture.
const (
	Idle               GestureState = iota
	Pressed                         // pointer down, no scrolling behaviour
	DragScroll                      // handle follows the pointer
	ClickScroll                     // plugin scrolls toward the pointer
	InstantClickScroll              // handle jumped under the pointer and follows it
)

func (s GestureState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case DragScroll:
		return "DragScroll"
	case ClickScroll:
		return "ClickScroll"
	case InstantClickScroll:
		return "InstantClickScroll"
	}
	return "Idle"
}

// Events creates the interaction of scrollbars.
type Events struct {
	opts    Options
	state   func() lifecycle.StructureSetupState
	env     *env.Environment
	plugins *plugins.Registry
}

// NewEvents prepares scrollbar interaction. state is a live accessor for the
// overflow state; drag gestures need to see changes while they run.
func NewEvents(opts Options, state func() lifecycle.StructureSetupState, e *env.Environment,
	p *plugins.Registry) *Events {
	//
	return &Events{opts: opts, state: state, env: e, plugins: p}
}

// Gesture is the interaction attached to one scrollbar.
type Gesture struct {
	*Events
	s              *Structure
	addRemoveClass AddRemoveClass
	doc            dom.Document
	host           dom.Element
	scrollElm      dom.Element
	horizontal     bool
	current        GestureState
	wheelScrollBy  bool
	wheelTimeout   func()       // cancels the wheel debounce timer
	offRootClick   func()       // pending root click stopper
	gesture        ovs.Teardown // per-gesture listeners
	teardown       ovs.Teardown
}

// Attach wires the interaction of a scrollbar. timeline may be nil; if set,
// the handle is animated by the scroll timeline.
func (ev *Events) Attach(s *Structure, addRemoveClass AddRemoveClass, doc dom.Document,
	host, scrollElm dom.Element, timeline dom.Timeline, horizontal bool) *Gesture {
	//
	g := &Gesture{
		Events:         ev,
		s:              s,
		addRemoveClass: addRemoveClass,
		doc:            doc,
		host:           host,
		scrollElm:      scrollElm,
		horizontal:     horizontal,
		wheelScrollBy:  true,
	}
	g.teardown.Add(
		s.Scrollbar.On("pointerenter", func(dom.Event) {
			addRemoveClass(ClassNameScrollbarInteraction, true)
		}),
		s.Scrollbar.On("pointerleave pointercancel", func(dom.Event) {
			addRemoveClass(ClassNameScrollbarInteraction, false)
		}),
		s.Scrollbar.On("wheel", g.wheel, dom.NotPassive(), dom.Capture()),
		s.Scrollbar.On("mousedown", g.stopRootClick, dom.Capture()),
		s.Track.On("pointerdown", g.pointerDown),
		g.animate(timeline),
		g.clearWheelTimeout,
		g.gesture.Run,
		func() {
			if g.offRootClick != nil {
				g.offRootClick()
			}
		},
	)
	return g
}

// State returns the current state of the gesture state machine.
func (g *Gesture) State() GestureState {
	return g.current
}

// Destroy removes all listeners, cancels animations and timers and ends a
// running gesture. It is idempotent.
func (g *Gesture) Destroy() {
	g.teardown.Run()
	g.current = Idle
}

func (g *Gesture) animate(timeline dom.Timeline) func() {
	if timeline == nil {
		return nil
	}
	start := "top"
	if g.horizontal {
		start = "left"
	}
	anim := g.s.Handle.Animate(dom.Keyframes{
		"transform": {
			style.Property(translate("0%", g.horizontal)),
			style.Property(translate("-100%", g.horizontal)),
		},
		start: {"0%", "100%"},
	}, timeline)
	return anim.Cancel
}

func translate(value string, horizontal bool) string {
	if horizontal {
		return "translateX(" + value + ")"
	}
	return "translateY(" + value + ")"
}

// --- Wheel -----------------------------------------------------------------

// wheel swallows wheel events on the scrollbar. Platforms swallow the first
// wheel tick on an overlay; it is compensated by a smooth scroll once per
// debounce window.
func (g *Gesture) wheel(e dom.Event) {
	we, ok := e.(*dom.WheelEvent)
	if !ok {
		return
	}
	if g.env.ScrollBy() && g.wheelScrollBy && we.DeltaMode == dom.DeltaPixel &&
		g.s.Scrollbar.Parent() == g.host {
		tracer().Debugf("scrollbars: compensating swallowed wheel tick (%g,%g)", we.DeltaX, we.DeltaY)
		g.scrollElm.ScrollBy(we.DeltaX, we.DeltaY, true)
	}
	g.wheelScrollBy = false
	g.addRemoveClass(ClassNameScrollbarWheel, true)
	g.clearWheelTimeout()
	g.wheelTimeout = g.doc.Timers().AfterFunc(WheelDebounce, func() {
		g.wheelTimeout = nil
		g.wheelScrollBy = true
		g.addRemoveClass(ClassNameScrollbarWheel, false)
	})
	e.PreventDefault()
}

func (g *Gesture) clearWheelTimeout() {
	if g.wheelTimeout != nil {
		g.wheelTimeout()
		g.wheelTimeout = nil
	}
}

// stopRootClick keeps the click following a mousedown on a scrollbar from
// reaching the document's other listeners.
func (g *Gesture) stopRootClick(dom.Event) {
	if g.offRootClick != nil {
		g.offRootClick()
	}
	g.offRootClick = g.doc.On("click", func(e dom.Event) {
		g.offRootClick = nil
		e.StopPropagation()
	}, dom.Once(), dom.Capture())
}

// --- Pointer gestures ------------------------------------------------------

func (g *Gesture) continuePointerDown(e *dom.PointerEvent, isDragScroll bool) bool {
	enabled := g.opts.ClickScroll
	if isDragScroll {
		enabled = g.opts.DragScroll
	}
	return e.Button == 0 && e.IsPrimary && enabled && g.opts.pointerEnabled(e.PointerType)
}

// invertedScale returns the inverse of the CSS transform scale of the scroll element
// along the gesture's axis.
func (g *Gesture) invertedScale() float64 {
	rect := g.scrollElm.BoundingClientRect()
	offset := g.scrollElm.OffsetSize().Axis(g.horizontal)
	if offset == 0 {
		return 1
	}
	scale := math.Round(rect.Length(g.horizontal)) / offset
	if scale == 0 {
		return 1
	}
	return 1 / scale
}

// relativeHandleMove returns a function which moves the handle by a distance
// relative to its position at pointer down, by scrolling scrollElm.
func (g *Gesture) relativeHandleMove(mouseDownScroll, invertedScale float64) func(float64) {
	h := g.horizontal
	return func(delta float64) {
		amount := g.state().OverflowAmount.Axis(h)
		handleTrackDiff := g.s.Track.OffsetSize().Axis(h) - g.s.Handle.OffsetSize().Axis(h)
		if handleTrackDiff <= 0 {
			return
		}
		scrollDelta := invertedScale * delta / handleTrackDiff * amount
		if h && g.s.Scrollbar.IsRTL() {
			switch m := g.env.RTLScrollBehavior().Match(); m {
			case m.Inverted():
				scrollDelta = -scrollDelta
			}
		}
		if h {
			g.scrollElm.SetScrollLeft(mouseDownScroll + scrollDelta)
		} else {
			g.scrollElm.SetScrollTop(mouseDownScroll + scrollDelta)
		}
	}
}

func (g *Gesture) scrollOffset() float64 {
	if g.horizontal {
		return g.scrollElm.ScrollLeft()
	}
	return g.scrollElm.ScrollTop()
}

func (g *Gesture) pointerDown(e dom.Event) {
	pe, ok := e.(*dom.PointerEvent)
	if !ok || pe.Target() == nil {
		return
	}
	isDragScroll := pe.Target().Closest("."+ClassNameScrollbarHandle) == g.s.Handle
	if !g.continuePointerDown(pe, isDragScroll) {
		return
	}
	g.gesture.Run() // a gesture still running has lost its release event
	h := g.horizontal
	captureElm := g.s.Track
	if isDragScroll {
		captureElm = g.s.Handle
	}
	instantClickScroll := !isDragScroll && pe.ShiftKey
	handleOffset := func() float64 {
		return g.s.Handle.BoundingClientRect().Start(h) - g.s.Track.BoundingClientRect().Start(h)
	}
	moveHandleRelative := g.relativeHandleMove(g.scrollOffset(), g.invertedScale())
	pointerDownOffset := pe.Client(h)
	trackRect := g.s.Track.BoundingClientRect()
	handleLength := g.s.Handle.BoundingClientRect().Length(h)
	handleCenter := handleOffset() + handleLength/2
	relativeTrackPointerOffset := pointerDownOffset - trackRect.Start(h)
	startOffset := 0.0
	if !isDragScroll {
		startOffset = relativeTrackPointerOffset - handleCenter
	}
	pointerID := pe.PointerID
	release := func(dom.Event) {
		g.gesture.Run()
		tracer().Debugf("scrollbars: released pointer %d", pointerID)
	}
	addAttrToken(g.host, DataAttributeHost, DataValueHostScrollbarPressed)
	g.gesture.Add(
		func() {
			removeAttrToken(g.host, DataAttributeHost, DataValueHostScrollbarPressed)
			g.current = Idle
		},
		func() { captureElm.ReleasePointerCapture(pointerID) },
		g.doc.On(ReleaseEvents, release),
		g.doc.On("selectstart", func(e dom.Event) { e.PreventDefault() }, dom.NotPassive()),
		g.s.Track.On(ReleaseEvents, release),
		g.s.Track.On("pointermove", func(e dom.Event) {
			me, ok := e.(*dom.PointerEvent)
			if !ok {
				return
			}
			if isDragScroll || instantClickScroll {
				moveHandleRelative(startOffset + me.Client(h) - pointerDownOffset)
			}
		}),
	)
	g.current = Pressed
	switch {
	case isDragScroll:
		g.current = DragScroll
	case instantClickScroll:
		g.current = InstantClickScroll
		moveHandleRelative(startOffset)
	default:
		if cs, ok := g.plugins.ClickScroll(); ok {
			g.current = ClickScroll
			g.gesture.Add(cs.Start(moveHandleRelative, handleOffset, startOffset,
				handleLength, relativeTrackPointerOffset))
		}
	}
	tracer().Debugf("scrollbars: pointer %d down, %s", pointerID, g.current)
	captureElm.SetPointerCapture(pointerID)
}
