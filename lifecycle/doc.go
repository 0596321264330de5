/*
Package lifecycle implements the overflow lifecycle, the reconciliation loop
of overlay scrollbars.

# Status

Early draft, API may change frequently. Please stay patient.

# Overview

On every reconciliation pass the lifecycle converts raw measured sizes into
an overflow state: which axis scrolls, by how much, and how native scrollbar
gutters are pushed out of the visible viewport. It then writes at most one
style patch per element.

Measurements are memoized in two caches, the content scroll size and the
overflow amount. The overflow amount cache always consumes the value the
scroll size cache produced in the same pass. Style patches are only rebuilt
and applied if one of these changed, or if an option, the direction, the
padding style or the flexbox glue state requires it. This gating keeps a
repeated pass with identical measurements free of DOM writes.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lifecycle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.lifecycle'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.lifecycle")
}
