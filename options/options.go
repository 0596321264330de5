package options

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/overlayscroll/dom/style/css"
)

// Overflow is the configured overflow behaviour per axis.
type Overflow struct {
	X css.OverflowBehavior `yaml:"x"`
	Y css.OverflowBehavior `yaml:"y"`
}

// Axis returns the behaviour for one axis.
func (o Overflow) Axis(horizontal bool) css.OverflowBehavior {
	if horizontal {
		return o.X
	}
	return o.Y
}

// Scrollbars configures the interaction with synthetic scrollbars.
type Scrollbars struct {
	DragScroll  bool     `yaml:"dragScroll"`
	ClickScroll bool     `yaml:"clickScroll"`
	Pointers    []string `yaml:"pointers"` // pointer types which may interact
}

// NativeScrollbarsOverlaid configures platforms with overlaid native scrollbars.
type NativeScrollbarsOverlaid struct {
	Show bool `yaml:"show"` // keep native overlaid scrollbars visible
}

// Options is the complete configuration.
type Options struct {
	Overflow                 Overflow                 `yaml:"overflow"`
	Scrollbars               Scrollbars               `yaml:"scrollbars"`
	NativeScrollbarsOverlaid NativeScrollbarsOverlaid `yaml:"nativeScrollbarsOverlaid"`
}

// Pointer types known to the scrollbar interaction.
var PointerTypes = []string{"mouse", "pen", "touch"}

// Default returns the default options: both axes scroll, drag-scrolling is
// enabled for all pointer types, click-scrolling is disabled.
func Default() Options {
	return Options{
		Overflow: Overflow{X: css.Scroll(), Y: css.Scroll()},
		Scrollbars: Scrollbars{
			DragScroll: true,
			Pointers:   append([]string(nil), PointerTypes...),
		},
	}
}

// ErrUnknownPointer is returned for unknown pointer types.
var ErrUnknownPointer = errors.New("unknown pointer type")

// ErrInvalidOptions flags an options document which could not be decoded.
var ErrInvalidOptions = errors.New("invalid options")

// Validate checks option values which cannot be checked while decoding.
// Unset overflow behaviours are replaced by `scroll`.
func (o *Options) Validate() error {
	if o.Overflow.X.IsUnset() {
		o.Overflow.X = css.Scroll()
	}
	if o.Overflow.Y.IsUnset() {
		o.Overflow.Y = css.Scroll()
	}
	for _, p := range o.Scrollbars.Pointers {
		if !contains(PointerTypes, p) {
			return fmt.Errorf("%w: %q", ErrUnknownPointer, p)
		}
	}
	return nil
}

// Load decodes a YAML options document on top of the defaults.
func Load(r io.Reader) (Options, error) {
	o := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		tracer().Errorf("options: %v", err)
		return Default(), fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := o.Validate(); err != nil {
		return Default(), err
	}
	tracer().P("overflow", o.Overflow).Debugf("options loaded")
	return o, nil
}

// PointerEnabled returns true if interaction by a pointer type is enabled.
func (s Scrollbars) PointerEnabled(pointerType string) bool {
	return contains(s.Pointers, pointerType)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
