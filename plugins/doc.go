/*
Package plugins is a registry for optional behaviour of overlay scrollbars.

The only extension point used by the core is click-scrolling: a plain click
on a scrollbar track hands over to a ClickScrollPlugin, which moves the
handle toward the pointer until the handle covers it. NewClickScroll returns
a default implementation driven by the document's timers.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package plugins

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.plugins'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.plugins")
}
