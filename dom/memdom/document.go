package memdom

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/style/cssom"
	"github.com/npillmayer/overlayscroll/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/overlayscroll/env"
)

// Document is an in-memory document. It implements dom.Document.
type Document struct {
	body      *Element
	elements  map[*html.Node]*Element
	sheets    []cssom.StyleSheet
	clock     Clock
	listeners listeners
	captures  map[int]*Element
	io        []*intersectionObserver
	ro        []*resizeObserver
	rtl       env.RTLScrollBehavior
}

// Option configures a document.
type Option func(*Document)

// WithRTLScrollBehavior sets the convention the document uses for horizontal
// scroll offsets of right-to-left elements. Defaults to env.RTLDefault.
func WithRTLScrollBehavior(b env.RTLScrollBehavior) Option {
	return func(doc *Document) {
		doc.rtl = b
	}
}

// New creates an empty document with a body element.
func New(opts ...Option) *Document {
	doc := &Document{
		elements: make(map[*html.Node]*Element),
		captures: make(map[int]*Element),
	}
	for _, opt := range opts {
		opt(doc)
	}
	doc.body = doc.newElement(atom.Body)
	return doc
}

// Body returns the body element. Elements attached below the body are
// considered part of the document.
func (doc *Document) Body() *Element {
	return doc.body
}

// Clock returns the document's timer clock.
func (doc *Document) Clock() *Clock {
	return &doc.clock
}

// Timers is part of interface dom.Document.
func (doc *Document) Timers() dom.Timers {
	return &doc.clock
}

// AddStyleSheet parses CSS text and appends its rules to the document's
// stylesheet.
func (doc *Document) AddStyleSheet(text string) error {
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return err
	}
	if len(doc.sheets) == 0 {
		doc.sheets = append(doc.sheets, sheet)
		return nil
	}
	doc.sheets[0].AppendRules(sheet)
	return nil
}

// CreateElement creates a detached <div> with the given classes.
// It is part of interface dom.Document.
func (doc *Document) CreateElement(classes ...string) dom.Element {
	return doc.Div(classes...)
}

// Div creates a detached <div> with the given classes.
func (doc *Document) Div(classes ...string) *Element {
	e := doc.newElement(atom.Div)
	e.AddClass(classes...)
	e.writes = 0
	return e
}

func (doc *Document) newElement(a atom.Atom) *Element {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	e := &Element{doc: doc, node: n}
	doc.elements[n] = e
	return e
}

func (doc *Document) lookup(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return doc.elements[n]
}

// On registers a document-level listener. It is part of interface dom.Document.
func (doc *Document) On(types string, h dom.Handler, opts ...dom.ListenOption) (off func()) {
	return doc.listeners.add(types, h, opts)
}

// ListenerCount returns the number of active document-level listeners.
func (doc *Document) ListenerCount() int {
	return doc.listeners.count()
}

// PointerCapture returns the element holding the capture for a pointer, or nil.
func (doc *Document) PointerCapture(pointerID int) *Element {
	return doc.captures[pointerID]
}

// Flush delivers all queued observer records. Callbacks may queue new
// records, which are delivered as well; Flush gives up after a bounded
// number of rounds to break feedback loops and returns an error then.
func (doc *Document) Flush() error {
	for round := 0; round < 64; round++ {
		delivered := false
		for _, o := range doc.io {
			delivered = o.deliver() || delivered
		}
		for _, o := range doc.ro {
			delivered = o.deliver() || delivered
		}
		if !delivered {
			return nil
		}
	}
	tracer().Errorf("memdom: observer records still pending after 64 rounds")
	return fmt.Errorf("observer feedback loop: %w", ErrNotSettled)
}

// NewScrollTimeline is part of interface dom.Document.
func (doc *Document) NewScrollTimeline(source dom.Element, horizontal bool) dom.Timeline {
	return &Timeline{source: source, horizontal: horizontal}
}

// Timeline is a scroll timeline.
type Timeline struct {
	source     dom.Element
	horizontal bool
}

func (tl *Timeline) Source() dom.Element { return tl.source }
func (tl *Timeline) Horizontal() bool    { return tl.horizontal }

// Animation is an animation started with Element.Animate.
type Animation struct {
	Keyframes dom.Keyframes
	Timeline  dom.Timeline
	cancelled bool
}

// Cancel is part of interface dom.Animation.
func (a *Animation) Cancel() {
	a.cancelled = true
}

// Cancelled returns true after Cancel has been called.
func (a *Animation) Cancelled() bool {
	return a.cancelled
}

var _ dom.Document = &Document{}
