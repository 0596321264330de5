package scrollbars

import (
	"strings"

	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/style"
)

// Class names and attributes of the scrollbar structure.
const (
	ClassNameScrollbar            = "os-scrollbar"
	ClassNameScrollbarHorizontal  = "os-scrollbar-horizontal"
	ClassNameScrollbarVertical    = "os-scrollbar-vertical"
	ClassNameScrollbarTrack       = "os-scrollbar-track"
	ClassNameScrollbarHandle      = "os-scrollbar-handle"
	ClassNameScrollbarInteraction = "os-scrollbar-interaction"
	ClassNameScrollbarWheel       = "os-scrollbar-wheel"
	DataAttributeHost             = "data-overlayscrollbars"
	DataValueHostScrollbarPressed = "scrollbarPressed"
)

// Structure is the triad of elements of one synthetic scrollbar.
type Structure struct {
	Scrollbar  dom.Element
	Track      dom.Element
	Handle     dom.Element
	Horizontal bool
	handle     style.Patch // last patch applied to the handle
}

// NewStructure creates the elements of a scrollbar. The scrollbar is
// detached; callers insert it into the host.
func NewStructure(doc dom.Document, horizontal bool) *Structure {
	axis := ClassNameScrollbarVertical
	if horizontal {
		axis = ClassNameScrollbarHorizontal
	}
	s := &Structure{
		Scrollbar:  doc.CreateElement(ClassNameScrollbar, axis),
		Track:      doc.CreateElement(ClassNameScrollbarTrack),
		Handle:     doc.CreateElement(ClassNameScrollbarHandle),
		Horizontal: horizontal,
	}
	s.Track.Prepend(s.Handle)
	s.Scrollbar.Prepend(s.Track)
	return s
}

// Destroy removes the scrollbar from the document. It is idempotent.
func (s *Structure) Destroy() {
	s.Scrollbar.Remove()
}

// AddRemoveClass adds or removes a class on a set of scrollbars.
type AddRemoveClass func(className string, add bool)

// ClassToggler returns an AddRemoveClass operating on all given scrollbars.
func ClassToggler(structures ...*Structure) AddRemoveClass {
	return func(className string, add bool) {
		for _, s := range structures {
			if add {
				s.Scrollbar.AddClass(className)
			} else {
				s.Scrollbar.RemoveClass(className)
			}
		}
	}
}

// addAttrToken adds a token to a space separated attribute value.
func addAttrToken(e dom.Element, key, token string) {
	v, _ := e.Attr(key)
	tokens := strings.Fields(v)
	for _, t := range tokens {
		if t == token {
			return
		}
	}
	e.SetAttr(key, strings.Join(append(tokens, token), " "))
}

// removeAttrToken removes a token from a space separated attribute value.
// The attribute is removed if no token remains.
func removeAttrToken(e dom.Element, key, token string) {
	v, ok := e.Attr(key)
	if !ok {
		return
	}
	var kept []string
	for _, t := range strings.Fields(v) {
		if t != token {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr(key)
		return
	}
	e.SetAttr(key, strings.Join(kept, " "))
}
