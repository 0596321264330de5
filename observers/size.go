package observers

import (
	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/cache"
	"github.com/npillmayer/overlayscroll/dom"
)

// SizeChangedEvent is emitted by a size observer whenever the observed box
// size of its target changes.
type SizeChangedEvent struct {
	Target   dom.Element
	Size     ovs.WH[float64]
	Previous ovs.WH[float64]
}

// SizeObserver reports changes of the offset size of an element.
type SizeObserver struct {
	target      dom.Element
	ro          dom.ResizeObserver
	size        *cache.Cache[ovs.WH[float64], ovs.WH[float64]]
	subscribers subscribers[SizeChangedEvent]
	teardown    ovs.Teardown
}

// NewSizeObserver starts observing target. onSize, if not nil, is subscribed
// immediately. Records are delivered by the document's event loop; repeated
// records with an unchanged size are swallowed.
func NewSizeObserver(doc dom.Document, target dom.Element, onSize func(SizeChangedEvent)) *SizeObserver {
	so := &SizeObserver{
		target: target,
		size:   cache.Identity(cache.Equal(ovs.EqualWH[float64])),
	}
	if onSize != nil {
		so.Subscribe(onSize)
	}
	so.ro = doc.NewResizeObserver(func(entries []dom.ResizeEntry) {
		for _, entry := range entries {
			if entry.Target == target {
				so.emit(entry.Size)
			}
		}
	})
	so.ro.Observe(target)
	so.teardown.Add(so.ro.Disconnect, so.subscribers.clear)
	return so
}

// Subscribe registers a handler for size changes.
func (so *SizeObserver) Subscribe(h func(SizeChangedEvent)) (off func()) {
	return so.subscribers.add(h)
}

// Read measures the target now and emits an event if the size changed.
func (so *SizeObserver) Read() {
	so.emit(so.target.OffsetSize())
}

func (so *SizeObserver) emit(size ovs.WH[float64]) {
	v := so.size.Update(false, size)
	if !v.Changed {
		return
	}
	tracer().Debugf("size observer: %gx%g", size.W, size.H)
	so.subscribers.emit(SizeChangedEvent{Target: so.target, Size: v.Value, Previous: v.Previous})
}

// Destroy disconnects the observer and drops all subscribers. It is
// idempotent.
func (so *SizeObserver) Destroy() {
	so.teardown.Run()
}

// --- Subscribers -----------------------------------------------------------

type subscribers[E any] struct {
	seq      int
	handlers map[int]func(E)
	order    []int
}

func (s *subscribers[E]) add(h func(E)) (off func()) {
	if s.handlers == nil {
		s.handlers = make(map[int]func(E))
	}
	s.seq++
	id := s.seq
	s.handlers[id] = h
	s.order = append(s.order, id)
	return func() {
		delete(s.handlers, id)
	}
}

func (s *subscribers[E]) emit(event E) {
	for _, id := range s.order {
		if h, ok := s.handlers[id]; ok {
			h(event)
		}
	}
}

func (s *subscribers[E]) clear() {
	s.handlers = nil
	s.order = nil
}
