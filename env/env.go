/*
Package env describes the capabilities of the platform overlay scrollbars
run on.

An Environment is probed once at startup and never changes afterwards.
Instead of looking it up globally, every component receives a pointer to the
same immutable value.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package env

import (
	"fmt"

	ovs "github.com/npillmayer/overlayscroll"
)

// RTLScrollBehavior is the convention a platform uses for horizontal scroll
// offsets in right-to-left layouts.
type RTLScrollBehavior uint8

const (
	// RTLDefault: offsets are positive, the start of the content (right edge)
	// is at the maximum offset.
	RTLDefault RTLScrollBehavior = iota
	// RTLNegative: the start is at 0, scrolling towards the left end yields
	// negative offsets down to -max.
	RTLNegative
	// RTLInverted: the start is at 0, scrolling towards the left end yields
	// positive offsets up to max.
	RTLInverted
)

func (b RTLScrollBehavior) String() string {
	switch b {
	case RTLNegative:
		return "negative"
	case RTLInverted:
		return "inverted"
	}
	return "default"
}

// Match starts a pattern match on the behaviour.
func (b RTLScrollBehavior) Match() *RTLMatcher {
	return &RTLMatcher{b: b}
}

// RTLMatcher is part of pattern matching for RTLScrollBehavior.
type RTLMatcher struct {
	b RTLScrollBehavior
}

func (m *RTLMatcher) is(b RTLScrollBehavior) *RTLMatcher {
	if m.b == b {
		return m
	}
	return nil
}

func (m *RTLMatcher) Default() *RTLMatcher  { return m.is(RTLDefault) }
func (m *RTLMatcher) Negative() *RTLMatcher { return m.is(RTLNegative) }
func (m *RTLMatcher) Inverted() *RTLMatcher { return m.is(RTLInverted) }

// Environment is the capability descriptor of a platform.
type Environment struct {
	nativeScrollbarSize       ovs.XY[float64]
	nativeScrollbarIsOverlaid ovs.XY[bool]
	nativeScrollbarStyling    bool
	flexboxGlue               bool
	rtlScrollBehavior         RTLScrollBehavior
	intersectionObserver      bool
	resizeObserver            bool
	scrollTimeline            bool
	scrollBy                  bool
}

// Option configures an Environment during construction.
type Option func(*Environment)

// New creates an environment. Without options it describes a desktop
// platform with 17px classic scrollbars, no native scrollbar styling,
// native flexbox glue and intersection observers.
func New(opts ...Option) *Environment {
	e := &Environment{
		nativeScrollbarSize:  ovs.XY[float64]{X: 17, Y: 17},
		flexboxGlue:          true,
		intersectionObserver: true,
		resizeObserver:       true,
		scrollBy:             true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithNativeScrollbarSize sets the thickness of native scrollbars per axis.
func WithNativeScrollbarSize(x, y float64) Option {
	return func(e *Environment) {
		e.nativeScrollbarSize = ovs.XY[float64]{X: x, Y: y}
	}
}

// WithOverlaidScrollbars flags native scrollbars as overlaid (not taking up
// layout space) per axis.
func WithOverlaidScrollbars(x, y bool) Option {
	return func(e *Environment) {
		e.nativeScrollbarIsOverlaid = ovs.XY[bool]{X: x, Y: y}
	}
}

// WithNativeScrollbarStyling flags the platform as able to hide native
// scrollbars by styling them directly.
func WithNativeScrollbarStyling(on bool) Option {
	return func(e *Environment) {
		e.nativeScrollbarStyling = on
	}
}

// WithFlexboxGlue sets wether the platform sizes scrollable flex children natively.
// Platforms without it need the flexbox-glue correction.
func WithFlexboxGlue(on bool) Option {
	return func(e *Environment) {
		e.flexboxGlue = on
	}
}

// WithRTLScrollBehavior sets the RTL scroll offset convention.
func WithRTLScrollBehavior(b RTLScrollBehavior) Option {
	return func(e *Environment) {
		e.rtlScrollBehavior = b
	}
}

// WithIntersectionObserver sets the availability of intersection observers.
func WithIntersectionObserver(on bool) Option {
	return func(e *Environment) {
		e.intersectionObserver = on
	}
}

// WithResizeObserver sets the availability of resize observers.
func WithResizeObserver(on bool) Option {
	return func(e *Environment) {
		e.resizeObserver = on
	}
}

// WithScrollTimeline sets the availability of scroll-linked animation timelines.
func WithScrollTimeline(on bool) Option {
	return func(e *Environment) {
		e.scrollTimeline = on
	}
}

// WithScrollBy sets the availability of a synthetic smooth scroll call.
func WithScrollBy(on bool) Option {
	return func(e *Environment) {
		e.scrollBy = on
	}
}

func (e *Environment) NativeScrollbarSize() ovs.XY[float64]    { return e.nativeScrollbarSize }
func (e *Environment) NativeScrollbarIsOverlaid() ovs.XY[bool] { return e.nativeScrollbarIsOverlaid }
func (e *Environment) NativeScrollbarStyling() bool            { return e.nativeScrollbarStyling }
func (e *Environment) FlexboxGlue() bool                       { return e.flexboxGlue }
func (e *Environment) RTLScrollBehavior() RTLScrollBehavior    { return e.rtlScrollBehavior }
func (e *Environment) IntersectionObserver() bool              { return e.intersectionObserver }
func (e *Environment) ResizeObserver() bool                    { return e.resizeObserver }
func (e *Environment) ScrollTimeline() bool                    { return e.scrollTimeline }
func (e *Environment) ScrollBy() bool                          { return e.scrollBy }

func (e *Environment) String() string {
	return fmt.Sprintf("env{scrollbar=%v overlaid=%v styling=%v glue=%v rtl=%s io=%v timeline=%v}",
		e.nativeScrollbarSize, e.nativeScrollbarIsOverlaid, e.nativeScrollbarStyling,
		e.flexboxGlue, e.rtlScrollBehavior, e.intersectionObserver, e.scrollTimeline)
}
