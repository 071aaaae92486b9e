package query

import (
	"encoding/json"
	"iter"
	"slices"
)

// OrderedMap is a read-only mapping whose keys iterate in insertion order.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// set inserts or replaces the value for k. A replaced key keeps its original
// position.
func (m *OrderedMap[K, V]) set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Get returns the value stored for k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in key order.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// All iterates key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns the contents as a plain Go map.
func (m *OrderedMap[K, V]) Map() map[K]V {
	out := make(map[K]V, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

type entry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON encodes the map as an array of {"key","value"} pairs in
// insertion order, so keys need not be strings.
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]entry[K, V], len(m.keys))
	for i, k := range m.keys {
		entries[i] = entry[K, V]{Key: k, Value: m.values[k]}
	}
	return json.Marshal(entries)
}
