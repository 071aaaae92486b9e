package query

import (
	"github.com/shopspring/decimal"
)

// AverageScale is the number of decimal places Summary.Average is rounded to.
const AverageScale = 4

// Reduce folds items from left to right starting at seed. An empty input
// returns seed unchanged.
func Reduce[T, A any](items []T, seed A, combine func(A, T) A) (A, error) {
	if combine == nil {
		return seed, errNilArgument("combiner")
	}

	acc := seed
	for _, item := range items {
		acc = combine(acc, item)
	}
	return acc, nil
}

// Summary holds count, sum, min, max and average of a sequence of decimals.
// For an empty sequence Min and Max are invalid (undefined) and Average is 0.
type Summary struct {
	Count   int64
	Sum     decimal.Decimal
	Min     decimal.NullDecimal
	Max     decimal.NullDecimal
	Average decimal.Decimal
}

// Summarize computes the statistics of values in a single pass.
func Summarize(values []decimal.Decimal) Summary {
	s := Summary{Sum: decimal.Zero, Average: decimal.Zero}
	for _, v := range values {
		s.Count++
		s.Sum = s.Sum.Add(v)
		if !s.Min.Valid || v.LessThan(s.Min.Decimal) {
			s.Min = decimal.NewNullDecimal(v)
		}
		if !s.Max.Valid || v.GreaterThan(s.Max.Decimal) {
			s.Max = decimal.NewNullDecimal(v)
		}
	}

	if s.Count > 0 {
		s.Average = s.Sum.DivRound(decimal.NewFromInt(s.Count), AverageScale)
	}
	return s
}

// SummarizeBy extracts a decimal from every element and summarizes them.
func SummarizeBy[T any](items []T, value func(T) decimal.Decimal) (Summary, error) {
	values, err := Map(items, value)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(values), nil
}
