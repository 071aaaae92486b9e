package query

import (
	"fmt"

	"streamquery/internal/model"
)

// GroupBy partitions items by key. Groups appear in order of the first
// occurrence of their key, and each group keeps the input order.
func GroupBy[T any, K comparable](items []T, key func(T) K) (*OrderedMap[K, []T], error) {
	return GroupByMapping(items, key, func(item T) T { return item })
}

// GroupByMapping partitions items by key and stores value(item) in each group.
func GroupByMapping[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) (*OrderedMap[K, []V], error) {
	if key == nil {
		return nil, errNilArgument("key")
	}
	if value == nil {
		return nil, errNilArgument("value")
	}

	groups := newOrderedMap[K, []V]()
	for _, item := range items {
		k := key(item)
		group, _ := groups.Get(k)
		groups.set(k, append(group, value(item)))
	}
	return groups, nil
}

// ToMap associates exactly one value with each key. Two elements with the same
// key fail with model.ErrDuplicateKey.
func ToMap[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) (*OrderedMap[K, V], error) {
	if key == nil {
		return nil, errNilArgument("key")
	}
	if value == nil {
		return nil, errNilArgument("value")
	}

	out := newOrderedMap[K, V]()
	for _, item := range items {
		k := key(item)
		if _, ok := out.Get(k); ok {
			return nil, fmt.Errorf("%w: %v", model.ErrDuplicateKey, k)
		}
		out.set(k, value(item))
	}
	return out, nil
}

// BestBy keeps, for every key, the element that is greatest under compare.
// On ties the element encountered first wins. Pass compare.Reversed() to keep
// the least element instead.
func BestBy[T any, K comparable](items []T, key func(T) K, compare Comparator[T]) (*OrderedMap[K, T], error) {
	if key == nil {
		return nil, errNilArgument("key")
	}
	if compare == nil {
		return nil, errNilArgument("comparator")
	}

	best := newOrderedMap[K, T]()
	for _, item := range items {
		k := key(item)
		current, ok := best.Get(k)
		if !ok || compare(item, current) > 0 {
			best.set(k, item)
		}
	}
	return best, nil
}
