package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicate_Composition(t *testing.T) {
	even := Predicate[int](func(n int) bool { return n%2 == 0 })
	positive := Predicate[int](func(n int) bool { return n > 0 })
	small := Predicate[int](func(n int) bool { return n < 10 })

	tests := []struct {
		name     string
		pred     Predicate[int]
		input    []int
		expected []bool
	}{
		{
			name:     "And",
			pred:     even.And(positive),
			input:    []int{-2, -1, 0, 1, 2},
			expected: []bool{false, false, false, false, true},
		},
		{
			name:     "Or",
			pred:     even.Or(positive),
			input:    []int{-2, -1, 0, 1, 2},
			expected: []bool{true, false, true, true, true},
		},
		{
			name:     "Negate",
			pred:     even.Negate(),
			input:    []int{1, 2},
			expected: []bool{true, false},
		},
		{
			name:     "All",
			pred:     All(even, positive, small),
			input:    []int{2, 12, -2, 3},
			expected: []bool{true, false, false, false},
		},
		{
			name:     "Any",
			pred:     Any(even, positive),
			input:    []int{-3, -2, 3},
			expected: []bool{false, true, true},
		},
		{
			name:     "Empty All accepts",
			pred:     All[int](),
			input:    []int{1},
			expected: []bool{true},
		},
		{
			name:     "Empty Any rejects",
			pred:     Any[int](),
			input:    []int{1},
			expected: []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.pred)
			for i, n := range tt.input {
				assert.Equal(t, tt.expected[i], tt.pred(n), "input %d", n)
			}
		})
	}
}

func TestPredicate_AndIsAssociative(t *testing.T) {
	a := Predicate[int](func(n int) bool { return n%2 == 0 })
	b := Predicate[int](func(n int) bool { return n > 0 })
	c := Predicate[int](func(n int) bool { return n%3 == 0 })

	left := a.And(b).And(c)
	right := a.And(b.And(c))
	leftOr := a.Or(b).Or(c)
	rightOr := a.Or(b.Or(c))

	for n := -12; n <= 12; n++ {
		assert.Equal(t, left(n), right(n), "and %d", n)
		assert.Equal(t, leftOr(n), rightOr(n), "or %d", n)
	}
}

func TestPredicate_ReuseHasNoSideEffects(t *testing.T) {
	even := Predicate[int](func(n int) bool { return n%2 == 0 })
	input := []int{1, 2, 3, 4}

	first, err := Filter(input, even)
	require.NoError(t, err)
	second, err := Filter(input, even)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredicate_NilOperand(t *testing.T) {
	even := Predicate[int](func(n int) bool { return n%2 == 0 })

	assert.Nil(t, even.And(nil))
	assert.Nil(t, even.Or(nil))
	assert.Nil(t, Predicate[int](nil).Negate())
	assert.Nil(t, All(even, nil))
	assert.Nil(t, Any[int](nil, even))
}
