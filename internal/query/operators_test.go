package query

import (
	"testing"

	"streamquery/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    int
	label string
}

func TestFilter(t *testing.T) {
	even := Predicate[int](func(n int) bool { return n%2 == 0 })

	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "Keeps matching elements in order", input: []int{5, 4, 3, 2, 1, 0}, expected: []int{4, 2, 0}},
		{name: "No matches", input: []int{1, 3}, expected: []int{}},
		{name: "Empty input", input: []int{}, expected: []int{}},
		{name: "Nil input", input: nil, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(tt.input, even)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			again, err := Filter(got, even)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	input := []int{1, 2, 3, 4}

	got, err := Filter(input, func(n int) bool { return n > 2 })
	require.NoError(t, err)
	got[0] = 100

	assert.Equal(t, []int{1, 2, 3, 4}, input)
}

func TestFilter_NilPredicate(t *testing.T) {
	_, err := Filter([]int{1}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	even := Predicate[int](func(n int) bool { return n%2 == 0 })
	_, err = Filter([]int{1}, even.And(nil))
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestAnyMatchAndCountIf(t *testing.T) {
	big := Predicate[int](func(n int) bool { return n > 10 })

	ok, err := AnyMatch([]int{1, 20, 3}, big)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AnyMatch([]int{}, big)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := CountIf([]int{11, 1, 12}, big)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = AnyMatch([]int{1}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = CountIf([]int{1}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestMap(t *testing.T) {
	got, err := Map([]int{3, 1, 2}, func(n int) string { return string(rune('a' + n)) })
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c"}, got)

	empty, err := Map([]int(nil), func(n int) int { return n })
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Map[int, int]([]int{1}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestFlatMap(t *testing.T) {
	got, err := FlatMap([][]int{{1, 2}, {}, {3}}, func(s []int) []int { return s })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = FlatMap[[]int, int]([][]int{{1}}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestDistinctBy_KeepsFirstOccurrence(t *testing.T) {
	input := []item{{1, "a"}, {2, "b"}, {1, "c"}, {3, "d"}, {2, "e"}}

	got, err := DistinctBy(input, func(i item) int { return i.id })
	require.NoError(t, err)

	assert.Equal(t, []item{{1, "a"}, {2, "b"}, {3, "d"}}, got)
}

func TestFlattenDistinct_UsesIdentityNotFieldEquality(t *testing.T) {
	shared := &item{id: 1, label: "same"}
	twin := &item{id: 2, label: "same"}
	other := &item{id: 3, label: "other"}

	nested := [][]*item{{shared, twin}, {other, shared}, {twin}}

	got, err := FlattenDistinct(nested, func(s []*item) []*item { return s }, func(i *item) int { return i.id })
	require.NoError(t, err)

	assert.Equal(t, []*item{shared, twin, other}, got)

	_, err = FlattenDistinct[[]*item, *item, int](nested, func(s []*item) []*item { return s }, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestLimit(t *testing.T) {
	input := []int{10, 20, 30}

	tests := []struct {
		name     string
		input    []int
		n        int
		expected []int
	}{
		{name: "Zero", input: input, n: 0, expected: []int{}},
		{name: "Fewer than length", input: input, n: 2, expected: []int{10, 20}},
		{name: "Equal to length", input: input, n: 3, expected: []int{10, 20, 30}},
		{name: "Beyond length", input: input, n: 10, expected: []int{10, 20, 30}},
		{name: "Empty input", input: []int{}, n: 3, expected: []int{}},
		{name: "Nil input", input: nil, n: 3, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Limit(tt.input, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLimit_Negative(t *testing.T) {
	got, err := Limit([]int{1, 2}, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "limit must not be negative")
	assert.Nil(t, got)
}

func TestLimit_ReturnsCopy(t *testing.T) {
	input := []int{1, 2, 3}

	got, err := Limit(input, 2)
	require.NoError(t, err)
	got[0] = 99

	assert.Equal(t, []int{1, 2, 3}, input)
}
