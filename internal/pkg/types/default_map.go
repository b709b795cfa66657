package types

import (
	"cmp"
	"maps"
	"slices"
)

// DefaultMap is a generic map wrapper that creates values on first access.
//
// It is used for indexes where every key owns a lazily created collection,
// for example an address mapped to the sequence numbers filed under it:
//
//	m := NewDefaultMap[string](func() []uint64 { return nil })
//	m.Set(addr, append(m.Get(addr), seq))
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key.
//
// If the key is not present, it invokes the defaultFunc to generate a default value,
// stores it in the map, and then returns it.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Lookup returns the value stored under key without creating a default entry.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Set manually assigns a value to the given key in the map.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Delete removes key from the map. Deleting a missing key is a no-op.
func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.data, key)
}

// Len returns the number of stored keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map used by the DefaultMap.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}

// SortedKeys returns the stored keys in ascending order.
func SortedKeys[K cmp.Ordered, V any](d DefaultMap[K, V]) []K {
	return slices.Sorted(maps.Keys(d.data))
}
