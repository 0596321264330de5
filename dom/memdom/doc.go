/*
Package memdom is an in-memory implementation of the dom interfaces.

Elements are backed by golang.org/x/net/html nodes; classes, attributes and
inline styles live in the node's attributes. Layout is not computed: tests
and scenarios set the measurements of an element with SetLayout, and the
engine reads them back like it would read them from a browser.

Computed styles are resolved from the inline style first, then from the
document's stylesheets (see AddStyleSheet), using cascadia for selector
matching. `direction` is inherited.

Asynchronous platform behaviour is driven explicitly:

	doc.Clock().Advance(d)   run timers which became due
	doc.Flush()              deliver queued observer records

Every style patch applied to an element is counted (StyleWrites), which
makes "no DOM writes" observable in tests.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package memdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.dom'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.dom")
}
