/*
Package css provides value types for the CSS properties the overflow
lifecycle reads and writes.

CSS properties are plentyful, but overlay scrollbars only care about a
handful of them: the per-axis overflow behaviour, pixel lengths for margins
and sizes, `calc()` expressions for widths compensating hidden scrollbars,
and transparent borders pushing overlaid scrollbars out of sight.
This package shields clients from the textual nature of these properties.

# Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.dom'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.dom")
}
