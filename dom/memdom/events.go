package memdom

import (
	"github.com/npillmayer/overlayscroll/dom"
)

type listener struct {
	typ     string
	h       dom.Handler
	opts    dom.ListenOptions
	removed bool
}

type listeners struct {
	list []*listener
}

func (ls *listeners) add(types string, h dom.Handler, opts []dom.ListenOption) (off func()) {
	var added []*listener
	for _, typ := range dom.SplitTypes(types) {
		l := &listener{typ: typ, h: h, opts: dom.MakeListenOptions(typ, opts...)}
		ls.list = append(ls.list, l)
		added = append(added, l)
	}
	return func() {
		for _, l := range added {
			ls.remove(l)
		}
	}
}

func (ls *listeners) remove(l *listener) {
	if l.removed {
		return
	}
	l.removed = true
	for i, x := range ls.list {
		if x == l {
			ls.list = append(ls.list[:i], ls.list[i+1:]...)
			return
		}
	}
}

func (ls *listeners) count() int {
	return len(ls.list)
}

// invoke calls the listeners for ev's type which are registered for the
// given phase (capture or not). Listeners added during dispatch are not called.
func (ls *listeners) invoke(ev dom.Event, capture bool) {
	snapshot := make([]*listener, len(ls.list))
	copy(snapshot, ls.list)
	for _, l := range snapshot {
		if l.removed || l.typ != ev.Type() || l.opts.Capture != capture {
			continue
		}
		if l.opts.Once {
			ls.remove(l)
		}
		ev.Base().SetPassive(l.opts.Passive)
		l.h(ev)
		ev.Base().SetPassive(false)
	}
}

var nonBubbling = map[string]bool{
	"pointerenter":       true,
	"pointerleave":       true,
	"scroll":             true,
	"gotpointercapture":  true,
	"lostpointercapture": true,
}

// Dispatch dispatches an event to a target element: capture phase from the
// document down to the target, target phase, then bubble phase back up to the
// document (for bubbling event types). It returns false if a listener
// prevented the default action.
func (doc *Document) Dispatch(target *Element, ev dom.Event) bool {
	ev.Base().EventTarget = target
	var path []*Element // ancestors, outermost first
	for n := target.node.Parent; n != nil; n = n.Parent {
		if p := doc.lookup(n); p != nil {
			path = append([]*Element{p}, path...)
		}
	}
	stopped := ev.PropagationStopped
	// capture phase
	doc.listeners.invoke(ev, true)
	for _, p := range path {
		if stopped() {
			break
		}
		p.listeners.invoke(ev, true)
	}
	// target phase
	if !stopped() {
		target.listeners.invoke(ev, true)
		target.listeners.invoke(ev, false)
	}
	// bubble phase
	if !nonBubbling[ev.Type()] {
		for i := len(path) - 1; i >= 0 && !stopped(); i-- {
			path[i].listeners.invoke(ev, false)
		}
		if !stopped() {
			doc.listeners.invoke(ev, false)
		}
	}
	return !ev.DefaultPrevented()
}

// Pointer dispatches a pointer event of a given type with the client
// coordinates of p. The event is retargeted to the element holding the
// pointer capture, if any.
func (doc *Document) Pointer(target *Element, typ string, p dom.PointerEvent) *dom.PointerEvent {
	ev := p
	ev.EventType = typ
	ev.Cancelable = true
	if ev.PointerType == "" {
		ev.PointerType = "mouse"
	}
	if c := doc.captures[ev.PointerID]; c != nil && typ != "pointerdown" {
		target = c
	}
	doc.Dispatch(target, &ev)
	return &ev
}

// Wheel dispatches a wheel event.
func (doc *Document) Wheel(target *Element, dx, dy float64, mode int) *dom.WheelEvent {
	ev := &dom.WheelEvent{DeltaX: dx, DeltaY: dy, DeltaMode: mode}
	ev.EventType = "wheel"
	ev.Cancelable = true
	doc.Dispatch(target, ev)
	return ev
}
