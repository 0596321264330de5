package dom

import (
	"time"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom/style"
)

// Element is an element of a document.
//
// Size readings follow the CSSOM view model:
//
//	ClientSize          inner size without scrollbars and borders
//	ScrollSize          size of the content, at least ClientSize
//	OffsetSize          layout size including borders and scrollbars
//	BoundingClientRect  rendered rectangle, may be fractional and transformed
type Element interface {
	// tree
	Parent() Element             // parent element or nil
	Prepend(children ...Element) // insert children before the first child
	Remove()                     // detach from the parent; no-op if detached
	Matches(selector string) bool
	Closest(selector string) Element // nearest inclusive ancestor matching selector, or nil

	// measuring
	ClientSize() ovs.WH[float64]
	ScrollSize() ovs.WH[float64]
	OffsetSize() ovs.WH[float64]
	BoundingClientRect() Rect

	// scrolling
	ScrollLeft() float64
	ScrollTop() float64
	SetScrollLeft(float64)
	SetScrollTop(float64)
	ScrollBy(dx, dy float64, smooth bool)

	// styling
	Style(key string) style.Property // computed style
	ApplyStyle(style.Patch)          // apply an inline style patch atomically
	IsRTL() bool                     // computed direction is right-to-left

	// classes and attributes
	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool
	Attr(key string) (string, bool)
	SetAttr(key, value string)
	RemoveAttr(key string)

	// pointer capture
	SetPointerCapture(pointerID int)
	ReleasePointerCapture(pointerID int)
	HasPointerCapture(pointerID int) bool

	// events and animations
	On(types string, h Handler, opts ...ListenOption) (off func())
	Animate(keyframes Keyframes, timeline Timeline) Animation
}

// Document is the owner of elements, the root of event dispatch and the
// provider of platform services.
type Document interface {
	CreateElement(classes ...string) Element
	On(types string, h Handler, opts ...ListenOption) (off func())
	Timers() Timers
	NewIntersectionObserver(root Element, cb func([]IntersectionEntry)) IntersectionObserver
	NewResizeObserver(cb func([]ResizeEntry)) ResizeObserver
	NewScrollTimeline(source Element, horizontal bool) Timeline
}

// Timers schedule callbacks on the document's event loop.
type Timers interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// --- Observers -------------------------------------------------------------

// IntersectionEntry is a record delivered by an intersection observer.
type IntersectionEntry struct {
	Target            Element
	IsIntersecting    bool
	IntersectionRatio float64
}

// IntersectionObserver observes the intersection of targets with a root element.
type IntersectionObserver interface {
	Observe(target Element)
	TakeRecords() []IntersectionEntry // queued but undelivered records
	Disconnect()
}

// ResizeEntry is a record delivered by a resize observer.
type ResizeEntry struct {
	Target Element
	Size   ovs.WH[float64]
}

// ResizeObserver observes the box size of targets.
type ResizeObserver interface {
	Observe(target Element)
	Disconnect()
}

// --- Animations ------------------------------------------------------------

// Keyframes maps style keys to a list of values the animation interpolates.
type Keyframes map[string][]style.Property

// Timeline drives an animation. A scroll timeline advances with the scroll
// progress of its source element instead of with time.
type Timeline interface {
	Source() Element
	Horizontal() bool
}

// Animation is a running animation.
type Animation interface {
	Cancel()
}
