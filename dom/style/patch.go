package style

import (
	"sort"
	"strings"
)

// Patch is an immutable set of inline style changes for one element.
// A property with the null value removes the property from the element.
//
// Patches are created with a Builder and applied atomically by a DOM element.
// The zero value is an empty patch.
type Patch struct {
	props []KeyValue // sorted by key
}

// Len returns the number of properties in the patch.
func (pt Patch) Len() int {
	return len(pt.props)
}

// IsEmpty returns true for a patch without properties.
func (pt Patch) IsEmpty() bool {
	return len(pt.props) == 0
}

// Get returns the property value for key, together with an indicator
// wether the patch touches this key at all.
func (pt Patch) Get(key string) (Property, bool) {
	i := sort.Search(len(pt.props), func(i int) bool {
		return pt.props[i].Key >= key
	})
	if i < len(pt.props) && pt.props[i].Key == key {
		return pt.props[i].Value, true
	}
	return NullStyle, false
}

// Properties returns a copy of all properties, ordered by key.
func (pt Patch) Properties() []KeyValue {
	r := make([]KeyValue, len(pt.props))
	copy(r, pt.props)
	return r
}

// Each calls f for every property of the patch, in key order.
func (pt Patch) Each(f func(key string, value Property)) {
	for _, kv := range pt.props {
		f(kv.Key, kv.Value)
	}
}

// Equal returns true if both patches contain the same properties.
func (pt Patch) Equal(other Patch) bool {
	if len(pt.props) != len(other.props) {
		return false
	}
	for i := range pt.props {
		if pt.props[i] != other.props[i] {
			return false
		}
	}
	return true
}

// Merge returns a new patch with the properties of other overriding the
// properties of pt.
func (pt Patch) Merge(other Patch) Patch {
	b := NewBuilder()
	pt.Each(b.setRaw)
	other.Each(b.setRaw)
	return b.Build()
}

// String returns the patch in CSS declaration syntax.
func (pt Patch) String() string {
	var sb strings.Builder
	for i, kv := range pt.props {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(kv.String())
	}
	return sb.String()
}

// --- Builder ---------------------------------------------------------------

// Builder accumulates style properties for a Patch. The zero value is not
// usable, create builders with NewBuilder.
type Builder struct {
	props map[string]Property
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{props: make(map[string]Property)}
}

// Set sets a property. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (b *Builder) Set(key string, p Property) *Builder {
	b.setRaw(key, Property(strings.ToLower(string(p))))
	return b
}

// Unset marks a property for removal.
func (b *Builder) Unset(keys ...string) *Builder {
	for _, k := range keys {
		b.props[k] = NullStyle
	}
	return b
}

// SetIf sets a property to p if cond holds, otherwise marks it for removal.
func (b *Builder) SetIf(cond bool, key string, p Property) *Builder {
	if cond {
		return b.Set(key, p)
	}
	return b.Unset(key)
}

// Get returns the current value for key.
func (b *Builder) Get(key string) Property {
	return b.props[key]
}

func (b *Builder) setRaw(key string, p Property) {
	b.props[key] = p
}

// Build returns an immutable patch. The builder may be used further; later
// changes do not affect patches built earlier.
func (b *Builder) Build() Patch {
	kv := make([]KeyValue, 0, len(b.props))
	for k, v := range b.props {
		kv = append(kv, KeyValue{Key: k, Value: v})
	}
	sort.Slice(kv, func(i, j int) bool {
		return kv[i].Key < kv[j].Key
	})
	tracer().Debugf("style: built patch with %d properties", len(kv))
	return Patch{props: kv}
}
