package observers

import (
	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/cache"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/env"
)

// ClassNameTrinsicObserver is the class of the sentinel element.
const ClassNameTrinsicObserver = "os-trinsic-observer"

// TrinsicChangedEvent is emitted when the height classification of the
// target flips.
type TrinsicChangedEvent struct {
	Target          dom.Element
	HeightIntrinsic cache.Value[bool]
	Measurement     Measurement
}

// TrinsicObserver observes whether the height of a target element is
// intrinsic (driven by its content) or extrinsic.
type TrinsicObserver struct {
	target          dom.Element
	sentinel        dom.Element
	io              dom.IntersectionObserver // nil on the fallback path
	sizes           *SizeObserver            // nil on the intersection path
	heightIntrinsic *cache.Cache[bool, Measurement]
	subscribers     subscribers[TrinsicChangedEvent]
	offListeners    ovs.Teardown
}

// NewTrinsicObserver starts observing target. onChange, if not nil, is
// called for every transition delivered by the platform.
//
// With intersection observers available, the first classification arrives
// with the first delivery of observer records. On the fallback path the
// sentinel is measured immediately.
func NewTrinsicObserver(doc dom.Document, target dom.Element, e *env.Environment,
	onChange func(cache.Value[bool])) *TrinsicObserver {
	//
	t := &TrinsicObserver{
		target:   target,
		sentinel: doc.CreateElement(ClassNameTrinsicObserver),
		heightIntrinsic: cache.NewComparable(Measurement.HeightIntrinsic,
			cache.Initial(false)),
	}
	if onChange != nil {
		t.Subscribe(func(ev TrinsicChangedEvent) { onChange(ev.HeightIntrinsic) })
	}
	if e.IntersectionObserver() {
		t.io = doc.NewIntersectionObserver(target, func(entries []dom.IntersectionEntry) {
			t.intersected(entries, false)
		})
		t.io.Observe(t.sentinel)
		t.offListeners.Add(t.io.Disconnect)
	} else {
		tracer().Infof("trinsic observer: no intersection observer, falling back to size observation")
		t.sizes = NewSizeObserver(doc, t.sentinel, nil)
		t.sizes.Subscribe(func(ev SizeChangedEvent) {
			t.trigger(DirectSize(ev.Size), false)
		})
		t.offListeners.Add(t.sizes.Destroy)
		t.trigger(DirectSize(t.sentinel.OffsetSize()), false)
	}
	target.Prepend(t.sentinel)
	return t
}

// Subscribe registers a handler for height classification changes.
func (t *TrinsicObserver) Subscribe(h func(TrinsicChangedEvent)) (off func()) {
	return t.subscribers.add(h)
}

// Sentinel returns the sentinel element inserted into the target.
func (t *TrinsicObserver) Sentinel() dom.Element {
	return t.sentinel
}

// Update drains queued but undelivered intersection records and reclassifies
// the target. It returns the new value and true only if the classification
// changed; subscribers are not notified for pulled records. On the fallback
// path Update is a no-op.
func (t *TrinsicObserver) Update() (cache.Value[bool], bool) {
	if t.io == nil {
		return cache.Value[bool]{}, false
	}
	return t.intersected(t.io.TakeRecords(), true)
}

// intersected classifies a batch of records. Only the last record counts.
func (t *TrinsicObserver) intersected(entries []dom.IntersectionEntry, fromRecords bool) (cache.Value[bool], bool) {
	if len(entries) == 0 {
		return cache.Value[bool]{}, false
	}
	if len(entries) > 1 {
		tracer().Debugf("trinsic observer: discarding %d older records", len(entries)-1)
	}
	last := entries[len(entries)-1]
	return t.trigger(Intersection(last.IntersectionRatio, last.IsIntersecting), fromRecords)
}

func (t *TrinsicObserver) trigger(m Measurement, fromRecords bool) (cache.Value[bool], bool) {
	v := t.heightIntrinsic.Update(false, m)
	if !v.Changed {
		return v, false
	}
	tracer().P("measurement", m).Debugf("trinsic observer: height intrinsic = %v", v.Value)
	if !fromRecords {
		t.subscribers.emit(TrinsicChangedEvent{Target: t.target, HeightIntrinsic: v, Measurement: m})
	}
	return v, true
}

// HeightIntrinsic returns the current classification. force is handed to the
// underlying cache.
func (t *TrinsicObserver) HeightIntrinsic(force bool) cache.Value[bool] {
	return t.heightIntrinsic.Current(force)
}

// Destroy disconnects observers, drops subscribers and removes the sentinel.
// It is idempotent and may be called without Update ever having been called.
func (t *TrinsicObserver) Destroy() {
	t.offListeners.Run()
	t.subscribers.clear()
	t.sentinel.Remove()
}
