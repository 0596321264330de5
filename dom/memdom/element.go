package memdom

import (
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/dom/style/cssom"
	"github.com/npillmayer/overlayscroll/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/overlayscroll/env"
)

// Layout holds the measurements of an element. Scroll sizes smaller than
// the client size are reported as the client size.
type Layout struct {
	Client ovs.WH[float64]
	Scroll ovs.WH[float64]
	Offset ovs.WH[float64]
	Rect   dom.Rect
}

// Element is an in-memory element. It implements dom.Element.
type Element struct {
	doc        *Document
	node       *html.Node
	layout     Layout
	scroll     ovs.XY[float64]
	listeners  listeners
	animations []*Animation
	ratio      float64 // intersection ratio with observer roots
	writes     int
	styles     int
	scrollBys  int
}

// --- Tree ------------------------------------------------------------------

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Parent is part of interface dom.Element.
func (e *Element) Parent() dom.Element {
	if p := e.doc.lookup(e.node.Parent); p != nil {
		return p
	}
	return nil
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if ch := e.doc.lookup(c); ch != nil {
			children = append(children, ch)
		}
	}
	return children
}

// Append appends children, detaching them from previous parents first.
func (e *Element) Append(children ...*Element) *Element {
	for _, ch := range children {
		ch.detach()
		e.node.AppendChild(ch.node)
	}
	return e
}

// Prepend is part of interface dom.Element.
func (e *Element) Prepend(children ...dom.Element) {
	ref := e.node.FirstChild
	for _, c := range children {
		ch, ok := c.(*Element)
		if !ok {
			tracer().Errorf("memdom: cannot prepend %T: %v", c, ErrNotMemdom)
			continue
		}
		ch.detach()
		if ref == nil {
			e.node.AppendChild(ch.node)
		} else {
			e.node.InsertBefore(ch.node, ref)
		}
	}
}

// Remove is part of interface dom.Element.
func (e *Element) Remove() {
	e.detach()
}

func (e *Element) detach() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// IsConnected returns true if the element is attached below the document body.
func (e *Element) IsConnected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.body.node {
			return true
		}
	}
	return false
}

var selectors sync.Map // string -> cascadia.Selector

func compile(selector string) cascadia.Selector {
	if s, ok := selectors.Load(selector); ok {
		return s.(cascadia.Selector)
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Errorf("memdom: invalid selector %q: %v", selector, err)
		sel = func(*html.Node) bool { return false }
	}
	selectors.Store(selector, sel)
	return sel
}

// Matches is part of interface dom.Element.
func (e *Element) Matches(selector string) bool {
	return compile(selector).Match(e.node)
}

// Closest is part of interface dom.Element.
func (e *Element) Closest(selector string) dom.Element {
	sel := compile(selector)
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			if el := e.doc.lookup(n); el != nil {
				return el
			}
		}
	}
	return nil
}

// --- Measuring -------------------------------------------------------------

// SetLayout sets the measurements of the element. Resize observers watching
// the element get a record queued if the offset size changed.
func (e *Element) SetLayout(l Layout) *Element {
	old := e.layout.Offset
	e.layout = l
	if !ovs.EqualWH(old, l.Offset) {
		for _, o := range e.doc.ro {
			o.queueFor(e)
		}
	}
	e.SetScrollLeft(e.scroll.X)
	e.SetScrollTop(e.scroll.Y)
	return e
}

// Layout returns the measurements of the element.
func (e *Element) Layout() Layout {
	return e.layout
}

func (e *Element) ClientSize() ovs.WH[float64]  { return e.layout.Client }
func (e *Element) OffsetSize() ovs.WH[float64]  { return e.layout.Offset }
func (e *Element) BoundingClientRect() dom.Rect { return e.layout.Rect }

// ScrollSize is part of interface dom.Element.
func (e *Element) ScrollSize() ovs.WH[float64] {
	return ovs.WH[float64]{
		W: max(e.layout.Scroll.W, e.layout.Client.W),
		H: max(e.layout.Scroll.H, e.layout.Client.H),
	}
}

// --- Scrolling -------------------------------------------------------------

// scrollRange returns the valid range of scroll offsets for one axis,
// following the RTL convention of the document for horizontal offsets.
func (e *Element) scrollRange(horizontal bool) (float64, float64) {
	s, c := e.ScrollSize(), e.ClientSize()
	maxScroll := max(0, s.Axis(horizontal)-c.Axis(horizontal))
	if horizontal && e.IsRTL() && e.doc.rtl == env.RTLNegative {
		return -maxScroll, 0
	}
	return 0, maxScroll
}

func (e *Element) ScrollLeft() float64 { return e.scroll.X }
func (e *Element) ScrollTop() float64  { return e.scroll.Y }

// SetScrollLeft is part of interface dom.Element. The offset is clamped to
// the scrollable range; a change fires a "scroll" event.
func (e *Element) SetScrollLeft(x float64) {
	lo, hi := e.scrollRange(true)
	e.setScroll(ovs.XY[float64]{X: ovs.Clamp(lo, hi, x), Y: e.scroll.Y})
}

// SetScrollTop is part of interface dom.Element.
func (e *Element) SetScrollTop(y float64) {
	lo, hi := e.scrollRange(false)
	e.setScroll(ovs.XY[float64]{X: e.scroll.X, Y: ovs.Clamp(lo, hi, y)})
}

// SetRawScroll sets scroll offsets without clamping, simulating overscroll
// (rubber-band) effects of some platforms.
func (e *Element) SetRawScroll(x, y float64) {
	e.setScroll(ovs.XY[float64]{X: x, Y: y})
}

func (e *Element) setScroll(p ovs.XY[float64]) {
	if ovs.EqualXY(p, e.scroll) {
		return
	}
	e.scroll = p
	e.writes++
	e.doc.Dispatch(e, dom.NewEvent("scroll"))
}

// ScrollBy is part of interface dom.Element. Smooth scrolling completes
// immediately.
func (e *Element) ScrollBy(dx, dy float64, smooth bool) {
	e.scrollBys++
	e.SetScrollLeft(e.scroll.X + dx)
	e.SetScrollTop(e.scroll.Y + dy)
}

// ScrollByCalls returns how often ScrollBy has been called.
func (e *Element) ScrollByCalls() int {
	return e.scrollBys
}

// --- Styling ---------------------------------------------------------------

func (e *Element) inline() []style.KeyValue {
	text, _ := e.Attr("style")
	kv, err := douceuradapter.ParseInline(text)
	if err != nil {
		tracer().Errorf("memdom: %v", err)
	}
	return kv
}

// Inline returns the inline style value for key.
func (e *Element) Inline(key string) style.Property {
	for _, p := range e.inline() {
		if p.Key == key {
			return p.Value
		}
	}
	return style.NullStyle
}

// Style is part of interface dom.Element. It returns the inline value, or
// the value of the matching stylesheet rules. `direction` is inherited.
func (e *Element) Style(key string) style.Property {
	if p := e.Inline(key); !p.IsEmpty() {
		return p
	}
	if p, ok := cssom.Lookup(e.doc.sheets, e.Matches, key); ok {
		return p
	}
	if key == "direction" {
		if dir, ok := e.Attr("dir"); ok {
			return style.Property(dir)
		}
		if p := e.doc.lookup(e.node.Parent); p != nil {
			return p.Style(key)
		}
	}
	return style.NullStyle
}

// ApplyStyle is part of interface dom.Element. Every call with a non-empty
// patch counts as one style write.
func (e *Element) ApplyStyle(patch style.Patch) {
	if patch.IsEmpty() {
		return
	}
	kv := e.inline()
	patch.Each(func(key string, value style.Property) {
		for i := range kv {
			if kv[i].Key == key {
				kv[i].Value = value
				return
			}
		}
		kv = append(kv, style.KeyValue{Key: key, Value: value})
	})
	e.setAttr("style", douceuradapter.SerializeInline(kv))
	e.styles++
	e.writes++
	tracer().Debugf("memdom: style %s += {%s}", e, patch)
}

// StyleWrites returns the number of style patches applied to the element.
func (e *Element) StyleWrites() int {
	return e.styles
}

// Writes returns the number of DOM writes (styles, classes, attributes,
// scroll offsets) performed on the element.
func (e *Element) Writes() int {
	return e.writes
}

// ResetCounters sets all write counters to zero.
func (e *Element) ResetCounters() {
	e.writes, e.styles, e.scrollBys = 0, 0, 0
}

// IsRTL is part of interface dom.Element.
func (e *Element) IsRTL() bool {
	return e.Style("direction") == "rtl"
}

// --- Classes and attributes ------------------------------------------------

func (e *Element) classes() []string {
	c, _ := e.Attr("class")
	return strings.Fields(c)
}

// AddClass is part of interface dom.Element.
func (e *Element) AddClass(names ...string) {
	cls := e.classes()
	changed := false
	for _, n := range names {
		if n != "" && !contains(cls, n) {
			cls = append(cls, n)
			changed = true
		}
	}
	if changed {
		e.setAttr("class", strings.Join(cls, " "))
	}
}

// RemoveClass is part of interface dom.Element.
func (e *Element) RemoveClass(names ...string) {
	cls := e.classes()
	kept := cls[:0]
	for _, c := range cls {
		if !contains(names, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(e.classes()) {
		e.setAttr("class", strings.Join(kept, " "))
	}
}

// HasClass is part of interface dom.Element.
func (e *Element) HasClass(name string) bool {
	return contains(e.classes(), name)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Attr is part of interface dom.Element.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr is part of interface dom.Element.
func (e *Element) SetAttr(key, value string) {
	if v, ok := e.Attr(key); ok && v == value {
		return
	}
	e.setAttr(key, value)
}

func (e *Element) setAttr(key, value string) {
	e.writes++
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr is part of interface dom.Element.
func (e *Element) RemoveAttr(key string) {
	for i, a := range e.node.Attr {
		if a.Key == key {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			e.writes++
			return
		}
	}
}

func (e *Element) String() string {
	s := e.node.Data
	if c := e.classes(); len(c) > 0 {
		s += "." + strings.Join(c, ".")
	}
	return s
}

// --- Pointer capture -------------------------------------------------------

// SetPointerCapture is part of interface dom.Element.
func (e *Element) SetPointerCapture(pointerID int) {
	e.doc.captures[pointerID] = e
}

// ReleasePointerCapture is part of interface dom.Element.
func (e *Element) ReleasePointerCapture(pointerID int) {
	if e.doc.captures[pointerID] == e {
		delete(e.doc.captures, pointerID)
	}
}

// HasPointerCapture is part of interface dom.Element.
func (e *Element) HasPointerCapture(pointerID int) bool {
	return e.doc.captures[pointerID] == e
}

// --- Events and animations -------------------------------------------------

// On is part of interface dom.Element.
func (e *Element) On(types string, h dom.Handler, opts ...dom.ListenOption) (off func()) {
	return e.listeners.add(types, h, opts)
}

// ListenerCount returns the number of active listeners on the element.
func (e *Element) ListenerCount() int {
	return e.listeners.count()
}

// Animate is part of interface dom.Element.
func (e *Element) Animate(keyframes dom.Keyframes, timeline dom.Timeline) dom.Animation {
	a := &Animation{Keyframes: keyframes, Timeline: timeline}
	e.animations = append(e.animations, a)
	return a
}

// Animations returns the animations which have not been cancelled.
func (e *Element) Animations() []*Animation {
	var running []*Animation
	for _, a := range e.animations {
		if !a.cancelled {
			running = append(running, a)
		}
	}
	return running
}

var _ dom.Element = &Element{}
