package plugins

import (
	"sort"
)

// ClickScrollName is the registry name of the click-scroll plugin.
const ClickScrollName = "clickScroll"

// ClickScrollPlugin scrolls continuously toward the pointer after a click on
// a scrollbar track.
//
// moveRelative moves the handle by a distance relative to where it was when
// the pointer went down. handleOffset returns the current offset of the
// handle within the track. startOffset is the signed distance from the
// handle's center to the pointer, handleLength the length of the handle and
// pointerOffset the pointer's offset within the track.
type ClickScrollPlugin interface {
	Start(moveRelative func(float64), handleOffset func() float64,
		startOffset, handleLength, pointerOffset float64) (off func())
}

// Registry holds named plugins. The zero value is an empty registry.
type Registry struct {
	plugins map[string]interface{}
}

// NewRegistry creates a registry holding plugins.
func NewRegistry(plugins map[string]interface{}) *Registry {
	r := &Registry{}
	for name, p := range plugins {
		r.Register(name, p)
	}
	return r
}

// Register adds or replaces a plugin.
func (r *Registry) Register(name string, plugin interface{}) {
	if r.plugins == nil {
		r.plugins = make(map[string]interface{})
	}
	tracer().Debugf("plugins: registered %q", name)
	r.plugins[name] = plugin
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the names of all registered plugins in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClickScroll returns the click-scroll plugin, if one is registered.
// A nil registry has no plugins.
func (r *Registry) ClickScroll() (ClickScrollPlugin, bool) {
	p, ok := r.Get(ClickScrollName)
	if !ok {
		return nil, false
	}
	cs, ok := p.(ClickScrollPlugin)
	if !ok {
		tracer().Errorf("plugins: %q is a %T, not a click-scroll plugin", ClickScrollName, p)
	}
	return cs, ok
}
