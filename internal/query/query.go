package query

// Query chains operators over a slice. The first failing step is remembered
// and every later step is skipped; Result reports it. Each step returns a new
// Query, so a partially built chain can be reused.
type Query[T any] struct {
	items []T
	err   error
}

// From starts a query over items.
func From[T any](items []T) *Query[T] {
	return &Query[T]{items: items}
}

func (q *Query[T]) then(step func([]T) ([]T, error)) *Query[T] {
	if q.err != nil {
		return q
	}
	items, err := step(q.items)
	return &Query[T]{items: items, err: err}
}

// Where keeps the elements satisfying pred.
func (q *Query[T]) Where(pred Predicate[T]) *Query[T] {
	return q.then(func(items []T) ([]T, error) {
		return Filter(items, pred)
	})
}

// OrderBy sorts stably by compare in the given direction.
func (q *Query[T]) OrderBy(compare Comparator[T], dir Direction) *Query[T] {
	return q.then(func(items []T) ([]T, error) {
		return Sort(items, compare, dir)
	})
}

// Take keeps at most the first n elements.
func (q *Query[T]) Take(n int) *Query[T] {
	return q.then(func(items []T) ([]T, error) {
		return Limit(items, n)
	})
}

// Err returns the first error of the chain.
func (q *Query[T]) Err() error {
	return q.err
}

// Result returns the elements, or the first error of the chain.
func (q *Query[T]) Result() ([]T, error) {
	if q.err != nil {
		return nil, q.err
	}
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out, nil
}

// Select maps every element of q with fn.
func Select[T, U any](q *Query[T], fn func(T) U) *Query[U] {
	if q.err != nil {
		return &Query[U]{err: q.err}
	}
	items, err := Map(q.items, fn)
	return &Query[U]{items: items, err: err}
}

// Expand replaces every element of q with its children.
func Expand[T, U any](q *Query[T], children func(T) []U) *Query[U] {
	if q.err != nil {
		return &Query[U]{err: q.err}
	}
	items, err := FlatMap(q.items, children)
	return &Query[U]{items: items, err: err}
}

// Distinct removes elements of q whose identity was already seen.
func Distinct[T any, K comparable](q *Query[T], identity func(T) K) *Query[T] {
	return q.then(func(items []T) ([]T, error) {
		return DistinctBy(items, identity)
	})
}
