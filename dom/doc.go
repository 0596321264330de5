/*
Package dom is the seam between the overlay scrollbar engine and a document
object model.

# Status

Early draft, API may change frequently. Please stay patient.

# Overview

The engine never computes layout. It reads measurements from elements
(client, scroll and offset sizes, bounding rectangles, scroll offsets and
computed styles) and decides what to write back: style patches, classes,
attributes and scroll offsets. Everything it needs from a document is
collected in the interfaces of this package:

	Element     measuring, scrolling, styling, events, pointer capture
	Document    element creation, document-level events, timers, observers

Events follow the W3C model: listeners are registered with On and removed by
calling the returned "off" closure; dispatch runs a capture phase from the
document down to the target and a bubble phase back up.

A concrete in-memory implementation lives in package memdom. It is used for
testing and for replaying recorded scenarios.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'overlayscroll.dom'
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.dom")
}
