/*
Package overlayscroll is the reconciliation engine behind custom overlay scrollbars.

# Status

Early draft, API may change frequently. Please stay patient.

# Overview

Overlay scrollbars are rendered on top of a host element while native
scrolling stays in charge of the scroll position. The hard part is not the
chrome of the scrollbars but keeping it in sync: content changes size, hosts
are resized, directions flip between LTR and RTL, and native scrollbars have
to be pushed out of sight without the host noticing.

The engine is split into small packages:

	cache       memoizing "compute if changed" cells
	env         immutable platform capability descriptor
	dom         the DOM seam (elements, events, observers, timers)
	dom/style   immutable style patches
	observers   trinsic (intrinsic/extrinsic height) observer
	lifecycle   the overflow reconciliation loop
	scrollbars  handle geometry and the pointer/wheel interaction protocol
	plugins     optional behaviour, e.g. continuous click-scrolling
	options     user options and change detection
	instance    composition of all of the above
	cmd/osdump  scenario runner printing the reconciled element tree

This package holds the small generic vocabulary shared by all of them:
2-dimensional scalar pairs and ordered teardown lists.

Everything runs on a single, cooperative event loop. No component starts
goroutines; suspension points are the deliveries of observer records and
DOM events, which are owned by the dom.Document implementation.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package overlayscroll
