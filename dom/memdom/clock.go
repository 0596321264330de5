package memdom

import (
	"sort"
	"time"
)

// Clock is a manually advanced clock implementing dom.Timers.
type Clock struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	at        time.Duration
	seq       int
	f         func()
	cancelled bool
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules f to run once the clock has been advanced by d.
func (c *Clock) AfterFunc(d time.Duration, f func()) (cancel func()) {
	c.seq++
	t := &timer{at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return func() {
		t.cancelled = true
	}
}

// Pending returns the number of scheduled, not yet cancelled timers.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and runs every timer which became due,
// in order of due time. Timers scheduled by running timers are honoured if
// they fall into the advanced interval.
func (c *Clock) Advance(d time.Duration) {
	end := c.now + d
	for {
		t := c.next(end)
		if t == nil {
			break
		}
		c.now = t.at
		t.cancelled = true
		t.f()
	}
	c.now = end
	c.compact()
}

func (c *Clock) next(end time.Duration) *timer {
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at == c.timers[j].at {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at < c.timers[j].at
	})
	for _, t := range c.timers {
		if !t.cancelled && t.at <= end {
			return t
		}
	}
	return nil
}

func (c *Clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	c.timers = live
}
