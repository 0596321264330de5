package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	ovs "github.com/npillmayer/overlayscroll"
	"github.com/npillmayer/overlayscroll/dom"
	"github.com/npillmayer/overlayscroll/dom/domdbg"
	"github.com/npillmayer/overlayscroll/dom/memdom"
	"github.com/npillmayer/overlayscroll/env"
	"github.com/npillmayer/overlayscroll/instance"
	"github.com/npillmayer/overlayscroll/lifecycle"
	"github.com/npillmayer/overlayscroll/options"
	"github.com/npillmayer/overlayscroll/plugins"
)

// ErrScenario flags a scenario which could not be decoded.
var ErrScenario = errors.New("invalid scenario")

// Scenario describes a platform and a measured host structure.
type Scenario struct {
	Env       EnvConfig       `yaml:"env"`
	Direction string          `yaml:"direction"`
	Host      Box             `yaml:"host"`
	Viewport  Box             `yaml:"viewport"`
	Content   *Box            `yaml:"content"`
	Scroll    ovs.XY[float64] `yaml:"scroll"`
	Options   options.Options `yaml:"options"`
}

// EnvConfig describes the platform capabilities.
type EnvConfig struct {
	NativeScrollbarSize    *ovs.XY[float64] `yaml:"nativeScrollbarSize"`
	Overlaid               ovs.XY[bool]     `yaml:"overlaid"`
	NativeScrollbarStyling bool             `yaml:"nativeScrollbarStyling"`
	NoFlexboxGlue          bool             `yaml:"noFlexboxGlue"`
	RTLScrollBehavior      string           `yaml:"rtlScrollBehavior"`
	NoIntersectionObserver bool             `yaml:"noIntersectionObserver"`
	ScrollTimeline         bool             `yaml:"scrollTimeline"`
}

// Box holds the measurements of one element as [width, height] pairs.
// Rect defaults to the offset size.
type Box struct {
	Client [2]float64 `yaml:"client"`
	Scroll [2]float64 `yaml:"scroll"`
	Offset [2]float64 `yaml:"offset"`
	Rect   []float64  `yaml:"rect"` // x, y, width, height
}

func (b Box) layout() (memdom.Layout, error) {
	l := memdom.Layout{
		Client: ovs.WH[float64]{W: b.Client[0], H: b.Client[1]},
		Scroll: ovs.WH[float64]{W: b.Scroll[0], H: b.Scroll[1]},
		Offset: ovs.WH[float64]{W: b.Offset[0], H: b.Offset[1]},
		Rect:   dom.Rect{Width: b.Offset[0], Height: b.Offset[1]},
	}
	switch len(b.Rect) {
	case 0:
	case 4:
		l.Rect = dom.Rect{X: b.Rect[0], Y: b.Rect[1], Width: b.Rect[2], Height: b.Rect[3]}
	default:
		return l, fmt.Errorf("%w: rect needs 4 values, has %d", ErrScenario, len(b.Rect))
	}
	return l, nil
}

// LoadScenario decodes a YAML scenario. Options not given in the scenario
// keep their defaults.
func LoadScenario(r io.Reader) (*Scenario, error) {
	sc := &Scenario{Options: options.Default()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenario, err)
	}
	if _, err := sc.Env.rtl(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s EnvConfig) rtl() (env.RTLScrollBehavior, error) {
	switch s.RTLScrollBehavior {
	case "", "default":
		return env.RTLDefault, nil
	case "negative":
		return env.RTLNegative, nil
	case "inverted":
		return env.RTLInverted, nil
	}
	return env.RTLDefault, fmt.Errorf("%w: unknown RTL scroll behavior %q", ErrScenario, s.RTLScrollBehavior)
}

// Environment creates the platform environment of the scenario.
func (s EnvConfig) Environment() (*env.Environment, error) {
	rtl, err := s.rtl()
	if err != nil {
		return nil, err
	}
	opts := []env.Option{
		env.WithOverlaidScrollbars(s.Overlaid.X, s.Overlaid.Y),
		env.WithNativeScrollbarStyling(s.NativeScrollbarStyling),
		env.WithFlexboxGlue(!s.NoFlexboxGlue),
		env.WithRTLScrollBehavior(rtl),
		env.WithIntersectionObserver(!s.NoIntersectionObserver),
		env.WithScrollTimeline(s.ScrollTimeline),
	}
	if s.NativeScrollbarSize != nil {
		opts = append(opts, env.WithNativeScrollbarSize(s.NativeScrollbarSize.X, s.NativeScrollbarSize.Y))
	}
	return env.New(opts...), nil
}

type built struct {
	doc  *memdom.Document
	host *memdom.Element
	inst *instance.Instance
}

// build creates the element tree and an instance with a click-scroll plugin.
func (sc *Scenario) build() (*built, error) {
	e, err := sc.Env.Environment()
	if err != nil {
		return nil, err
	}
	doc := memdom.New(memdom.WithRTLScrollBehavior(e.RTLScrollBehavior()))
	host := doc.Div("os-host")
	padding := doc.Div("os-padding")
	viewport := doc.Div("os-viewport")
	s := lifecycle.Structure{Host: host, Padding: padding, Viewport: viewport}
	doc.Body().Append(host.Append(padding.Append(viewport)))
	if sc.Direction != "" {
		host.SetAttr("dir", sc.Direction)
	}
	boxes := []struct {
		e   *memdom.Element
		box Box
	}{{host, sc.Host}, {viewport, sc.Viewport}}
	if sc.Content != nil {
		content := doc.Div("os-content")
		viewport.Append(content)
		s.Content = content
		boxes = append(boxes, struct {
			e   *memdom.Element
			box Box
		}{content, *sc.Content})
	}
	for _, b := range boxes {
		l, err := b.box.layout()
		if err != nil {
			return nil, err
		}
		b.e.SetLayout(l)
	}
	viewport.SetScrollLeft(sc.Scroll.X)
	viewport.SetScrollTop(sc.Scroll.Y)
	reg := plugins.NewRegistry(map[string]interface{}{
		plugins.ClickScrollName: plugins.NewClickScroll(doc.Timers()),
	})
	inst, err := instance.New(doc, s, e, sc.Options, reg)
	if err != nil {
		return nil, err
	}
	return &built{doc: doc, host: host, inst: inst}, nil
}

func (b *built) dump() string {
	return domdbg.Dump(b.host)
}

func hintsForPass() lifecycle.UpdateHints {
	return lifecycle.UpdateHints{SizeChanged: true, ContentMutation: true}
}
