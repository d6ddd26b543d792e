package pipeline

import (
	"cmp"
	"maps"
	"slices"
)

// Registry is an immutable lookup table built once at startup.
type Registry[K cmp.Ordered, V any] struct {
	entries map[K]V
}

// NewRegistry copies entries into a new Registry.
func NewRegistry[K cmp.Ordered, V any](entries map[K]V) *Registry[K, V] {
	return &Registry[K, V]{entries: maps.Clone(entries)}
}

// Lookup returns the entry registered under key.
func (r *Registry[K, V]) Lookup(key K) (V, bool) {
	if r == nil {
		var zero V
		return zero, false
	}
	v, ok := r.entries[key]
	return v, ok
}

// With returns a new Registry with key bound to v. The receiver is unchanged.
func (r *Registry[K, V]) With(key K, v V) *Registry[K, V] {
	entries := make(map[K]V)
	if r != nil {
		maps.Copy(entries, r.entries)
	}
	entries[key] = v
	return &Registry[K, V]{entries: entries}
}

// Keys returns the registered keys in sorted order.
func (r *Registry[K, V]) Keys() []K {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.entries))
}
