package query

import (
	"fmt"

	"streamquery/internal/model"
)

// errNilArgument reports a missing function argument.
func errNilArgument(name string) error {
	return fmt.Errorf("%w: %s must not be nil", model.ErrInvalidArgument, name)
}

// Filter returns the elements of items satisfying pred, in input order.
func Filter[T any](items []T, pred Predicate[T]) ([]T, error) {
	if pred == nil {
		return nil, errNilArgument("predicate")
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// AnyMatch reports whether at least one element satisfies pred.
func AnyMatch[T any](items []T, pred Predicate[T]) (bool, error) {
	if pred == nil {
		return false, errNilArgument("predicate")
	}

	for _, item := range items {
		if pred(item) {
			return true, nil
		}
	}
	return false, nil
}

// CountIf returns the number of elements satisfying pred.
func CountIf[T any](items []T, pred Predicate[T]) (int, error) {
	if pred == nil {
		return 0, errNilArgument("predicate")
	}

	count := 0
	for _, item := range items {
		if pred(item) {
			count++
		}
	}
	return count, nil
}

// Map applies fn to every element. The result has the same length and order
// as items.
func Map[T, U any](items []T, fn func(T) U) ([]U, error) {
	if fn == nil {
		return nil, errNilArgument("transform")
	}

	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out, nil
}

// FlatMap concatenates children(item) for every element, in order.
func FlatMap[T, U any](items []T, children func(T) []U) ([]U, error) {
	if children == nil {
		return nil, errNilArgument("children")
	}

	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, children(item)...)
	}
	return out, nil
}

// DistinctBy drops elements whose identity was already seen, keeping the first
// occurrence of each.
func DistinctBy[T any, K comparable](items []T, identity func(T) K) ([]T, error) {
	if identity == nil {
		return nil, errNilArgument("identity")
	}

	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := identity(item)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}

// FlattenDistinct flattens the children of every element and removes
// duplicates by identity, keeping first-seen order.
func FlattenDistinct[T, U any, K comparable](items []T, children func(T) []U, identity func(U) K) ([]U, error) {
	if identity == nil {
		return nil, errNilArgument("identity")
	}

	flat, err := FlatMap(items, children)
	if err != nil {
		return nil, err
	}
	return DistinctBy(flat, identity)
}

// Limit returns at most the first n elements of items. A negative n is an
// invalid argument.
func Limit[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative, got %d", model.ErrInvalidArgument, n)
	}

	n = min(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out, nil
}
