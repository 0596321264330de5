package css

import (
	"strings"

	"github.com/npillmayer/overlayscroll/dom/style"
)

// overflow is an enum type for the overflow behaviour of one axis.
type overflow uint8

// Enum values for type overflow
const (
	overflowUnset         overflow = iota
	overflowVisible                // content may overflow, no scrolling
	overflowScroll                 // content scrolls
	overflowHidden                 // content is clipped, scrolling only programmatically
	overflowVisibleScroll          // visible, but scrollbars participate as if scrolling
)

// OverflowBehavior is an option type for the configured overflow behaviour of
// one axis. It is independent from the measured overflow of an element.
type OverflowBehavior struct {
	kind overflow
}

/*
type OverflowBehavior
	= Unset
	| Visible
	| Scroll
	| Hidden
	| VisibleScroll
*/

// Visible creates an overflow behaviour of value `visible`.
func Visible() OverflowBehavior {
	return OverflowBehavior{kind: overflowVisible}
}

// Scroll creates an overflow behaviour of value `scroll`.
func Scroll() OverflowBehavior {
	return OverflowBehavior{kind: overflowScroll}
}

// Hidden creates an overflow behaviour of value `hidden`.
func Hidden() OverflowBehavior {
	return OverflowBehavior{kind: overflowHidden}
}

// VisibleScroll creates an overflow behaviour of value `visible-scroll`.
func VisibleScroll() OverflowBehavior {
	return OverflowBehavior{kind: overflowVisibleScroll}
}

var overflowMap = map[overflow]string{
	overflowVisible:       "visible",
	overflowScroll:        "scroll",
	overflowHidden:        "hidden",
	overflowVisibleScroll: "visible-scroll",
}

var overflowStringMap = map[string]overflow{
	"visible":        overflowVisible,
	"scroll":         overflowScroll,
	"hidden":         overflowHidden,
	"visible-scroll": overflowVisibleScroll,
}

// Overflow returns an optional overflow behaviour from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset behaviour.
func Overflow(p style.Property) OverflowBehavior {
	p = style.Property(strings.ToLower(strings.TrimSpace(string(p))))
	if k, ok := overflowStringMap[string(p)]; ok {
		return OverflowBehavior{kind: k}
	}
	if !p.IsEmpty() {
		tracer().Debugf("css: unknown overflow behaviour %q", p)
	}
	return OverflowBehavior{}
}

func (o OverflowBehavior) String() string {
	if s, ok := overflowMap[o.kind]; ok {
		return s
	}
	return ""
}

// Property returns the behaviour as a style property. Note that
// `visible-scroll` is not a valid value for CSS `overflow`; clients must
// not write it to an element.
func (o OverflowBehavior) Property() style.Property {
	return style.Property(o.String())
}

// IsUnset returns true if o is unset.
func (o OverflowBehavior) IsUnset() bool {
	return o.kind == overflowUnset
}

// HidesOverflow is true for `scroll` and `hidden`, i.e. for behaviours
// which force the CSS overflow property of a viewport once content overflows.
func (o OverflowBehavior) HidesOverflow() bool {
	return o.kind == overflowScroll || o.kind == overflowHidden
}

// IsVisibleScroll is true for `visible-scroll`.
func (o OverflowBehavior) IsVisibleScroll() bool {
	return o.kind == overflowVisibleScroll
}

// MarshalText makes OverflowBehavior usable with text-based decoders.
func (o OverflowBehavior) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes a behaviour from its CSS-like name.
func (o *OverflowBehavior) UnmarshalText(text []byte) error {
	*o = Overflow(style.Property(text))
	if o.IsUnset() && len(text) > 0 {
		return ErrUnknownOverflow
	}
	return nil
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on the behaviour:
//
//	switch m := o.Match(); m {
//	case m.Scroll(): ...
//	case m.Hidden(): ...
//	}
func (o OverflowBehavior) Match() *OMatcher {
	return &OMatcher{o: o}
}

// OMatcher is part of pattern matching for OverflowBehavior.
type OMatcher struct {
	o OverflowBehavior
}

func (m *OMatcher) is(k overflow) *OMatcher {
	if m.o.kind == k {
		return m
	}
	return nil
}

func (m *OMatcher) IsKind(o OverflowBehavior) *OMatcher { return m.is(o.kind) }
func (m *OMatcher) Unset() *OMatcher                    { return m.is(overflowUnset) }
func (m *OMatcher) Visible() *OMatcher                  { return m.is(overflowVisible) }
func (m *OMatcher) Scroll() *OMatcher                   { return m.is(overflowScroll) }
func (m *OMatcher) Hidden() *OMatcher                   { return m.is(overflowHidden) }
func (m *OMatcher) VisibleScroll() *OMatcher            { return m.is(overflowVisibleScroll) }

// --- Expression matching ---------------------------------------------------

// OverflowPatterns maps every overflow behaviour to a value of type T.
type OverflowPatterns[T any] struct {
	Unset         T
	Visible       T
	Scroll        T
	Hidden        T
	VisibleScroll T
	Default       T
}

// OverflowPattern starts an expression match on o.
func OverflowPattern[T any](o OverflowBehavior) *OMatchExpr[T] {
	return &OMatchExpr[T]{o: o}
}

// OMatchExpr is part of pattern matching for OverflowBehavior types and intended
// to be instantiated using `OverflowPattern()` only.
type OMatchExpr[T any] struct {
	o OverflowBehavior
}

// OneOf selects the pattern for the behaviour.
func (m *OMatchExpr[T]) OneOf(patterns OverflowPatterns[T]) T {
	switch m.o.kind {
	case overflowUnset:
		return patterns.Unset
	case overflowVisible:
		return patterns.Visible
	case overflowScroll:
		return patterns.Scroll
	case overflowHidden:
		return patterns.Hidden
	case overflowVisibleScroll:
		return patterns.VisibleScroll
	}
	return patterns.Default
}
