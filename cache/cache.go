package cache

import "reflect"

// Value is the result of a memoized computation.
type Value[T any] struct {
	Value    T    // the current value
	Changed  bool // true if the last update produced a new value (or was forced on cold start)
	Previous T    // the value replaced by the most recent change
}

// Option configures a Cache.
type Option[T any] func(*options[T])

type options[T any] struct {
	equal      func(a, b T) bool
	initial    T
	hasInitial bool
}

// Equal sets the equality predicate used to detect changes. Caches created
// with New fall back to reflect.DeepEqual if it is not set, caches created
// with NewComparable to ==.
func Equal[T any](eq func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.equal = eq
	}
}

// Initial sets the value a cache starts with. The first update will then
// report a change only if its result differs from the initial value (or if
// it is forced).
func Initial[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.initial = v
		o.hasInitial = true
	}
}

// Cache memoizes the result of a compute function over a context type C.
// A Cache is not safe for concurrent use; it is meant to live on a single
// event loop.
type Cache[T any, C any] struct {
	compute  func(C) T
	equal    func(a, b T) bool
	value    T
	previous T
	hasValue bool
	updates  int
}

// New creates a cache for compute. Values of any type are accepted; without
// an Equal option they are compared with reflect.DeepEqual.
func New[T any, C any](compute func(C) T, opts ...Option[T]) *Cache[T, C] {
	return newCache(compute, deepEqual[T], opts)
}

// NewComparable creates a cache for compute over a comparable value type.
// Without an Equal option values are compared with ==.
func NewComparable[T comparable, C any](compute func(C) T, opts ...Option[T]) *Cache[T, C] {
	return newCache(compute, identical[T], opts)
}

func newCache[T any, C any](compute func(C) T, equal func(a, b T) bool, opts []Option[T]) *Cache[T, C] {
	o := options[T]{equal: equal}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T, C]{
		compute:  compute,
		equal:    o.equal,
		value:    o.initial,
		hasValue: o.hasInitial,
	}
}

// Identity returns a cache over the values themselves, i.e. the context of
// every update is the new value.
func Identity[T any](opts ...Option[T]) *Cache[T, T] {
	return New(func(v T) T { return v }, opts...)
}

// IdentityComparable is Identity for comparable value types.
func IdentityComparable[T comparable](opts ...Option[T]) *Cache[T, T] {
	return NewComparable(func(v T) T { return v }, opts...)
}

func identical[T comparable](a, b T) bool {
	return a == b
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Update computes a new value from ctx and compares it with the stored one.
//
// The result is marked as changed if the value differs from the stored value,
// if there was no stored value yet, or if force is set and this is the very
// first update of the cache (cold start). A value equal to the stored one
// never counts as a change after the first update, not even when forced.
func (c *Cache[T, C]) Update(force bool, ctx C) Value[T] {
	v := c.compute(ctx)
	first := c.updates == 0
	c.updates++
	changed := !c.hasValue || !c.equal(c.value, v) || (force && first)
	if force && first {
		tracer().Debugf("cache: forced cold start with %v", v)
	}
	if changed {
		c.previous = c.value
		c.value = v
		c.hasValue = true
	}
	return Value[T]{Value: c.value, Changed: changed, Previous: c.previous}
}

// Current returns the stored value without computing. Changed is set to
// force, for consumers which must react on cold start even without a new
// computation.
func (c *Cache[T, C]) Current(force bool) Value[T] {
	return Value[T]{Value: c.value, Changed: force, Previous: c.previous}
}

// Updates returns the number of updates performed so far.
func (c *Cache[T, C]) Updates() int {
	return c.updates
}
