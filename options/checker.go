package options

import (
	"github.com/npillmayer/overlayscroll/cache"
)

// Checker hands out options together with a flag telling whether an option
// changed since it has been checked last.
type Checker struct {
	opts       Options
	overflow   *cache.Cache[Overflow, Options]
	show       *cache.Cache[bool, Options]
	scrollbars *cache.Cache[Scrollbars, Options]
}

// NewChecker creates a checker for a set of options. The first check of
// every option reports a change.
func NewChecker(o Options) *Checker {
	return &Checker{
		opts: o,
		overflow: cache.NewComparable(func(o Options) Overflow {
			return o.Overflow
		}),
		show: cache.NewComparable(func(o Options) bool {
			return o.NativeScrollbarsOverlaid.Show
		}),
		scrollbars: cache.New(func(o Options) Scrollbars {
			return o.Scrollbars
		}, cache.Equal(equalScrollbars)),
	}
}

// Set replaces the options. Changes are reported by the next checks.
func (c *Checker) Set(o Options) {
	tracer().Debugf("options: reconfigured")
	c.opts = o
}

// Options returns the current options.
func (c *Checker) Options() Options {
	return c.opts
}

// Overflow checks option `overflow`.
func (c *Checker) Overflow() cache.Value[Overflow] {
	return c.overflow.Update(false, c.opts)
}

// ShowNativeOverlaidScrollbars checks option `nativeScrollbarsOverlaid.show`.
func (c *Checker) ShowNativeOverlaidScrollbars() cache.Value[bool] {
	return c.show.Update(false, c.opts)
}

// Scrollbars checks option `scrollbars`.
func (c *Checker) Scrollbars() cache.Value[Scrollbars] {
	return c.scrollbars.Update(false, c.opts)
}

func equalScrollbars(a, b Scrollbars) bool {
	if a.DragScroll != b.DragScroll || a.ClickScroll != b.ClickScroll || len(a.Pointers) != len(b.Pointers) {
		return false
	}
	for i := range a.Pointers {
		if a.Pointers[i] != b.Pointers[i] {
			return false
		}
	}
	return true
}
