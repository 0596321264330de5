/*
Package options holds the user-facing configuration of an overlay
scrollbars instance.

Options are plain values with YAML tags. Load decodes a YAML document on top
of the defaults. A Checker wraps options in caches so that every getter
reports wether an option changed since the previous reconciliation pass.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package options

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.options'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.options")
}
