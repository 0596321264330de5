/*
Package instance composes the parts of an overlay scrollbar instance.

An instance owns a trinsic observer and a size observer on the host, the
overflow lifecycle of the host's structure and one synthetic scrollbar per
axis. Observers trigger reconciliation passes; every pass refreshes the
scrollbar handles from the resulting overflow state. Scrolling the viewport
refreshes the handles without a pass.

All methods must be called from the document's event loop.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package instance

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.instance'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.instance")
}
