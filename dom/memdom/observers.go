package memdom

import (
	"github.com/npillmayer/overlayscroll/dom"
)

// --- Intersection observers ------------------------------------------------

type intersectionObserver struct {
	doc          *Document
	root         dom.Element
	cb           func([]dom.IntersectionEntry)
	targets      []*Element
	queue        []dom.IntersectionEntry
	disconnected bool
}

// NewIntersectionObserver is part of interface dom.Document.
func (doc *Document) NewIntersectionObserver(root dom.Element, cb func([]dom.IntersectionEntry)) dom.IntersectionObserver {
	o := &intersectionObserver{doc: doc, root: root, cb: cb}
	doc.io = append(doc.io, o)
	return o
}

// Observe queues an initial record for the target, as browsers do.
func (o *intersectionObserver) Observe(target dom.Element) {
	t, ok := target.(*Element)
	if !ok || o.disconnected {
		return
	}
	o.targets = append(o.targets, t)
	o.queueFor(t)
}

func (o *intersectionObserver) queueFor(t *Element) {
	o.queue = append(o.queue, dom.IntersectionEntry{
		Target:            t,
		IsIntersecting:    t.ratio > 0,
		IntersectionRatio: t.ratio,
	})
}

func (o *intersectionObserver) observes(t *Element) bool {
	return !o.disconnected && contains2(o.targets, t)
}

func (o *intersectionObserver) TakeRecords() []dom.IntersectionEntry {
	q := o.queue
	o.queue = nil
	return q
}

func (o *intersectionObserver) Disconnect() {
	o.disconnected = true
	o.targets = nil
	o.queue = nil
	for i, x := range o.doc.io {
		if x == o {
			o.doc.io = append(o.doc.io[:i], o.doc.io[i+1:]...)
			break
		}
	}
}

func (o *intersectionObserver) deliver() bool {
	if len(o.queue) == 0 || o.disconnected {
		return false
	}
	o.cb(o.TakeRecords())
	return true
}

// SetIntersection sets the intersection ratio of an element with the roots of
// intersection observers. If the ratio changes, a record is queued for every
// observer watching the element.
func (doc *Document) SetIntersection(e *Element, ratio float64) {
	if e.ratio == ratio {
		return
	}
	doc.QueueIntersection(e, ratio)
}

// QueueIntersection sets the intersection ratio and queues a record even if
// the ratio did not change.
func (doc *Document) QueueIntersection(e *Element, ratio float64) {
	e.ratio = ratio
	for _, o := range doc.io {
		if o.observes(e) {
			o.queueFor(e)
		}
	}
}

// IntersectionObservers returns the number of connected intersection observers.
func (doc *Document) IntersectionObservers() int {
	return len(doc.io)
}

// --- Resize observers ------------------------------------------------------

type resizeObserver struct {
	doc          *Document
	cb           func([]dom.ResizeEntry)
	targets      []*Element
	queue        []dom.ResizeEntry
	disconnected bool
}

// NewResizeObserver is part of interface dom.Document.
func (doc *Document) NewResizeObserver(cb func([]dom.ResizeEntry)) dom.ResizeObserver {
	o := &resizeObserver{doc: doc, cb: cb}
	doc.ro = append(doc.ro, o)
	return o
}

func (o *resizeObserver) Observe(target dom.Element) {
	t, ok := target.(*Element)
	if !ok || o.disconnected {
		return
	}
	o.targets = append(o.targets, t)
	o.queueFor(t)
}

func (o *resizeObserver) queueFor(t *Element) {
	if o.disconnected || !contains2(o.targets, t) {
		return
	}
	o.queue = append(o.queue, dom.ResizeEntry{Target: t, Size: t.layout.Offset})
}

func (o *resizeObserver) Disconnect() {
	o.disconnected = true
	o.targets = nil
	o.queue = nil
	for i, x := range o.doc.ro {
		if x == o {
			o.doc.ro = append(o.doc.ro[:i], o.doc.ro[i+1:]...)
			break
		}
	}
}

func (o *resizeObserver) deliver() bool {
	if len(o.queue) == 0 || o.disconnected {
		return false
	}
	q := o.queue
	o.queue = nil
	o.cb(q)
	return true
}

// ResizeObservers returns the number of connected resize observers.
func (doc *Document) ResizeObservers() int {
	return len(doc.ro)
}

func contains2(list []*Element, e *Element) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
