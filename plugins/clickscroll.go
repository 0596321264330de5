package plugins

import (
	"math"
	"time"

	"github.com/npillmayer/overlayscroll/dom"
)

// Timing of the default click-scroll plugin.
const (
	ClickScrollFrame      = 16 * time.Millisecond  // interval between moves
	ClickScrollStep       = 133 * time.Millisecond // duration of one handle-length step
	ClickScrollFirstPause = 222 * time.Millisecond // pause after the first step
)

type clickScroll struct {
	timers dom.Timers
}

// NewClickScroll creates the default click-scroll plugin. It moves the handle
// in steps of one handle length toward the pointer, each step animated
// linearly over ClickScrollStep. After the first step it pauses for
// ClickScrollFirstPause. Scrolling stops once the handle covers the pointer.
func NewClickScroll(timers dom.Timers) ClickScrollPlugin {
	return &clickScroll{timers: timers}
}

type clickScrollRun struct {
	timers        dom.Timers
	moveRelative  func(float64)
	handleOffset  func() float64
	direction     float64
	handleLength  float64
	pointerOffset float64
	iteration     int
	cancel        func()
	stopped       bool
}

// Start is part of interface ClickScrollPlugin.
func (cs *clickScroll) Start(moveRelative func(float64), handleOffset func() float64,
	startOffset, handleLength, pointerOffset float64) (off func()) {
	//
	run := &clickScrollRun{
		timers:        cs.timers,
		moveRelative:  moveRelative,
		handleOffset:  handleOffset,
		direction:     sign(startOffset),
		handleLength:  handleLength,
		pointerOffset: pointerOffset,
	}
	if run.direction == 0 || handleLength <= 0 {
		return func() {}
	}
	run.step(0)
	return run.stop
}

func (run *clickScrollRun) stop() {
	run.stopped = true
	if run.cancel != nil {
		run.cancel()
		run.cancel = nil
	}
}

// step animates one handle length, starting at progress from.
func (run *clickScrollRun) step(from float64) {
	to := from + run.handleLength*run.direction
	frames := int(math.Max(1, math.Ceil(float64(ClickScrollStep)/float64(ClickScrollFrame))))
	var frame func(i int)
	frame = func(i int) {
		if run.stopped {
			return
		}
		progress := from + (to-from)*float64(i)/float64(frames)
		run.moveRelative(progress)
		if i < frames {
			run.cancel = run.timers.AfterFunc(ClickScrollFrame, func() { frame(i + 1) })
			return
		}
		start := run.handleOffset()
		if run.pointerOffset >= start && run.pointerOffset <= start+run.handleLength {
			tracer().Debugf("click scroll: reached pointer after %d steps", run.iteration+1)
			return
		}
		pause := time.Duration(0)
		if run.iteration == 0 {
			pause = ClickScrollFirstPause
		}
		run.iteration++
		run.cancel = run.timers.AfterFunc(pause, func() { run.step(progress) })
	}
	frame(1)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
