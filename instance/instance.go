package instance

import (
	"fmt"

	"github.com/google/uuid"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/cache"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/lifecycle"
	"github.com/npillmayer/overlayscroll/observers"
	"github.com/npillmayer/overlayscroll/options"
	"github.com/npillmayer/overlayscroll/plugins"
	"github.com/npillmayer/overlayscroll/scrollbars"
)

// Instance is the overlay scrollbar instance of one host element.
type Instance struct {
	id        uuid.UUID
	doc       dom.Document
	s         lifecycle.Structure
	env       *env.Environment
	checker   *options.Checker
	plugins   *plugins.Registry
	trinsic   *observers.TrinsicObserver
	sizes     *observers.SizeObserver
	overflow  *lifecycle.Overflow
	rtl       *cache.Cache[bool, dom.Element]
	bars      [2]*scrollbars.Structure // horizontal, vertical
	gestures  [2]*scrollbars.Gesture
	timeline  bool
	ready     bool
	updating  bool
	destroyed bool
	teardown  ovs.Teardown
}

// Option configures an instance.
type Option func(*Instance)

// WithPaddingStyle hands the overflow lifecycle the margins the structure
// layer uses to compensate the host's padding.
func WithPaddingStyle(paddingStyle func() lifecycle.PaddingStyle) Option {
	return func(i *Instance) {
		i.overflow = lifecycle.NewOverflow(i.s, i.env, paddingStyle)
	}
}

// New creates an instance for structure s and runs a first, forced
// reconciliation pass. reg may be nil.
func New(doc dom.Document, s lifecycle.Structure, e *env.Environment, opts options.Options,
	reg *plugins.Registry, instOpts ...Option) (*Instance, error) {
	//
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	i := &Instance{
		id:       uuid.New(),
		doc:      doc,
		s:        s,
		env:      e,
		checker:  options.NewChecker(opts),
		plugins:  reg,
		rtl:      cache.NewComparable(dom.Element.IsRTL),
		timeline: e.ScrollTimeline(),
		overflow: lifecycle.NewOverflow(s, e, nil),
	}
	for _, opt := range instOpts {
		opt(i)
	}
	tracer().P("instance", i.id.String()).Infof("instance: created, %s", e)
	// The trinsic sentinel is prepended last and must stay the host's first child.
	i.bars[1] = scrollbars.NewStructure(doc, false)
	i.bars[0] = scrollbars.NewStructure(doc, true)
	s.Host.Prepend(i.bars[0].Scrollbar, i.bars[1].Scrollbar)
	i.trinsic = observers.NewTrinsicObserver(doc, s.Host, e, func(v cache.Value[bool]) {
		i.Update(lifecycle.UpdateHints{HeightIntrinsic: v}, false)
	})
	i.sizes = observers.NewSizeObserver(doc, s.Host, func(observers.SizeChangedEvent) {
		i.Update(lifecycle.UpdateHints{SizeChanged: true}, false)
	})
	i.attach(i.checker.Scrollbars().Value)
	i.teardown.Add(
		i.detach,
		s.Viewport.On("scroll", func(dom.Event) { i.refreshHandles() }),
		i.bars[0].Destroy,
		i.bars[1].Destroy,
		i.sizes.Destroy,
		i.trinsic.Destroy,
	)
	i.ready = true
	i.Update(lifecycle.UpdateHints{
		SizeChanged:         true,
		HostMutation:        true,
		ContentMutation:     true,
		PaddingStyleChanged: true,
	}, true)
	return i, nil
}

// ID returns the instance id used in traces.
func (i *Instance) ID() string {
	return i.id.String()
}

// Update runs a reconciliation pass. The height classification and the
// direction are filled in by the instance. Calls during a running pass and
// after Destroy are ignored.
func (i *Instance) Update(hints lifecycle.UpdateHints, force bool) {
	if !i.ready || i.destroyed {
		return
	}
	if i.updating {
		tracer().Debugf("instance: update during a running pass ignored")
		return
	}
	i.updating = true
	defer func() { i.updating = false }()
	if v, ok := i.trinsic.Update(); ok {
		hints.HeightIntrinsic = v
	} else if !hints.HeightIntrinsic.Changed {
		hints.HeightIntrinsic = i.trinsic.HeightIntrinsic(force)
	}
	hints.DirectionIsRTL = i.rtl.Update(force, i.s.Host)
	tracer().P("instance", i.id.String()).Debugf("instance: pass, force=%v", force)
	i.overflow.Update(hints, i.checker, force)
	if sb := i.checker.Scrollbars(); sb.Changed {
		i.attach(sb.Value)
	}
	i.refreshHandles()
}

// SetOptions reconfigures the instance and runs a pass.
func (i *Instance) SetOptions(opts options.Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("instance: %w", err)
	}
	i.checker.Set(opts)
	i.Update(lifecycle.UpdateHints{}, false)
	return nil
}

// Options returns the current options.
func (i *Instance) Options() options.Options {
	return i.checker.Options()
}

// State returns the overflow state of the last pass.
func (i *Instance) State() lifecycle.StructureSetupState {
	return i.overflow.State()
}

// Scrollbar returns the scrollbar of one axis.
func (i *Instance) Scrollbar(horizontal bool) *scrollbars.Structure {
	return i.bars[axis(horizontal)]
}

// Gesture returns the interaction of the scrollbar of one axis.
func (i *Instance) Gesture(horizontal bool) *scrollbars.Gesture {
	return i.gestures[axis(horizontal)]
}

// Destroy tears the instance down: interactions first, then the scrollbars,
// then the observers. It is idempotent.
func (i *Instance) Destroy() {
	if i.destroyed {
		return
	}
	i.destroyed = true
	i.teardown.Run()
	tracer().P("instance", i.id.String()).Infof("instance: destroyed")
}

func axis(horizontal bool) int {
	if horizontal {
		return 0
	}
	return 1
}

// attach (re)creates the interaction of both scrollbars.
func (i *Instance) attach(sb options.Scrollbars) {
	i.detach()
	events := scrollbars.NewEvents(scrollbars.Options{
		DragScroll:  sb.DragScroll,
		ClickScroll: sb.ClickScroll,
		Pointers:    sb.Pointers,
	}, i.overflow.StateFunc(), i.env, i.plugins)
	toggle := scrollbars.ClassToggler(i.bars[0], i.bars[1])
	for k, bar := range i.bars {
		var tl dom.Timeline
		if i.timeline {
			tl = i.doc.NewScrollTimeline(i.s.Viewport, bar.Horizontal)
		}
		i.gestures[k] = events.Attach(bar, toggle, i.doc, i.s.Host, i.s.Viewport, tl, bar.Horizontal)
	}
}

func (i *Instance) detach() {
	for _, g := range i.gestures {
		if g != nil {
			g.Destroy()
		}
	}
}

func (i *Instance) refreshHandles() {
	if i.destroyed {
		return
	}
	state := i.overflow.State()
	rtl := i.rtl.Current(false).Value
	for _, bar := range i.bars {
		scrollbars.Update(bar, state, i.s.Viewport, i.env, rtl, i.timeline)
	}
}
