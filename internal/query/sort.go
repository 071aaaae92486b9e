package query

import (
	"cmp"
	"fmt"
	"slices"

	"streamquery/internal/model"
)

// Comparator orders two values: negative when a sorts before b, zero when
// they are equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Comparing builds a comparator from a key with a natural order.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	if key == nil {
		return nil
	}
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ComparingFunc builds a comparator from a key and a comparison over keys,
// e.g. ComparingFunc(price, decimal.Decimal.Cmp).
func ComparingFunc[T, K any](key func(T) K, compare func(K, K) int) Comparator[T] {
	if key == nil || compare == nil {
		return nil
	}
	return func(a, b T) int {
		return compare(key(a), key(b))
	}
}

// Reversed returns the comparator with the opposite order. Equal elements stay
// equal.
func (c Comparator[T]) Reversed() Comparator[T] {
	if c == nil {
		return nil
	}
	return func(a, b T) int {
		return c(b, a)
	}
}

// ThenComparing breaks ties of c with next.
func (c Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	if c == nil || next == nil {
		return nil
	}
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// Direction selects ascending or descending sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Sort returns a stably sorted copy of items. Elements comparing equal keep
// their input order in both directions.
func Sort[T any](items []T, compare Comparator[T], dir Direction) ([]T, error) {
	if compare == nil {
		return nil, errNilArgument("comparator")
	}

	switch dir {
	case Ascending:
	case Descending:
		compare = compare.Reversed()
	default:
		return nil, fmt.Errorf("%w: unknown sort direction %s", model.ErrInvalidArgument, dir)
	}

	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, compare)
	return out, nil
}
