/*
Package scrollbars implements synthetic scrollbars: their element structure,
the geometry of their handles and the pointer and wheel interaction.

# Overview

Every axis gets a scrollbar element containing a track, which contains the
handle. Handle geometry is derived from the overflow state of the lifecycle:

	length ratio = edge / (edge + overflow amount)          ∈ [0,1]
	scroll percent = normalized scroll offset / overflow amount   ∈ [0,1]
	offset ratio = (1/length ratio - 1) * scroll percent

The offset ratio is measured in handle lengths, which is what a CSS
translate transform of the handle expects. Scroll offsets are clamped before
use, so overscroll effects of some platforms never move a handle out of its
track. Horizontal offsets of right-to-left elements are normalized to the
progress from the start edge for all three platform conventions (see
env.RTLScrollBehavior).

Interaction follows a small state machine per scrollbar:

	Idle → Pressed → DragScroll | ClickScroll | InstantClickScroll → Idle

A gesture starts with a pointerdown on the track and ends with the first of
pointerup, pointerleave, pointercancel or lostpointercapture on the track or
the document. Ending a gesture releases all its listeners and the pointer
capture exactly once.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scrollbars

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.scrollbars'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.scrollbars")
}
