/*
Package cache implements "compute if changed" cells.

Reading layout is expensive and writing styles is even more so. A Cache
wraps a computation and remembers its last result; every update tells the
caller whether the result actually changed, which lets the overflow
lifecycle skip writes that would not alter anything.

	c := cache.New(func(ctx Sizes) XY[float64] { ... },
	    cache.Equal(overlayscroll.EqualXY[float64]),
	    cache.Initial(XY[float64]{}))
	v := c.Update(false, sizes)
	if v.Changed { ... }

Context values are handed in on every update and are not part of the cache's
identity; they carry the latest measurements so that the compute function
does not have to own any measurement logic.

A cache performs no recovery: if the compute function panics, the panic
propagates to the caller of Update.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cache

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'overlayscroll.cache'.
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.cache")
}
