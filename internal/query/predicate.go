// Package query provides composable operators over in-memory slices: filter,
// map, flatten, distinct, sort, limit, group-by, reduce and statistics.
//
// Operators never mutate their input and always return freshly allocated
// results. A nil input slice is treated as an empty sequence. Passing a nil
// function (predicate, transform, key, comparator or combiner) fails with an
// error wrapping model.ErrInvalidArgument.
package query

// Predicate reports whether a value satisfies a condition. Predicates are
// plain values and may be shared between queries.
type Predicate[T any] func(T) bool

// And returns a predicate satisfied when both p and other are. If either
// operand is nil the result is nil, which Filter rejects.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	if p == nil || other == nil {
		return nil
	}
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or returns a predicate satisfied when either p or other is. If either
// operand is nil the result is nil.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	if p == nil || other == nil {
		return nil
	}
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Negate returns the complement of p.
func (p Predicate[T]) Negate() Predicate[T] {
	if p == nil {
		return nil
	}
	return func(v T) bool {
		return !p(v)
	}
}

// All combines predicates with AND. With no arguments it accepts everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	for _, p := range preds {
		if p == nil {
			return nil
		}
	}
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates with OR. With no arguments it rejects everything.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	for _, p := range preds {
		if p == nil {
			return nil
		}
	}
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}
