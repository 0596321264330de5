/*
Package observers classifies element heights as intrinsic or extrinsic and
reports size changes of elements.

# Overview

A trinsic observer decides whether the height of a target element is driven
by its own content (intrinsic) or constrained from outside (extrinsic). It
prepends a zero-height sentinel to the target and watches it, preferably with
an intersection observer rooted at the target. Platforms without intersection
observers fall back to a resize-based size observer on the sentinel.

Observers deliver discrete events to their subscribers. Consumers which need a
deterministic snapshot, e.g. right before a reconciliation pass, call Update to
drain queued records synchronously.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package observers

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.observers'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.observers")
}
