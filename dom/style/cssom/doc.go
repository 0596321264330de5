/*
Package cssom provides the minimal CSS object model needed to compute
styles of elements which are not set inline.

# Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

# Overview

Overlay scrollbars mostly write inline styles, but they read computed ones:
a viewport's `overflow-x` may come from a class rule in a stylesheet, a host's
`direction` may be inherited. CSSOM is the "CSS Object Model", similar to
the DOM for HTML. We only implement what is needed for reading back computed
values: stylesheets consisting of rules, and a lookup which applies the
rules matching an element in document order, with `!important` declarations
winning over normal ones.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation based on
github.com/aymerick/douceur may be found in sub-package douceuradapter.
Selector matching is left to the caller, usually implemented with
https://godoc.org/github.com/andybalholm/cascadia.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'overlayscroll.dom'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.dom")
}
