package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "Same label", a: "Books", b: "Books", expected: true},
		{name: "Different case", a: "books", b: "BOOKS", expected: true},
		{name: "Surrounding spaces", a: " Toys ", b: "toys", expected: true},
		{name: "Full case folding", a: "Straße", b: "STRASSE", expected: true},
		{name: "Different label", a: "Books", b: "Baby", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryEquals(tt.a, tt.b))
		})
	}
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, CategoryKey("Books"), CategoryKey("bOOKS"))
	assert.Equal(t, "books", CategoryKey(" Books"))
	assert.NotEqual(t, CategoryKey("Books"), CategoryKey("Toys"))
	assert.Equal(t, CategoryKey("Straße"), CategoryKey("STRASSE"))
}

func TestProduct_InCategory(t *testing.T) {
	p := &Product{ID: 1, Name: "Go in Action", Category: "Books", Price: decimal.NewFromInt(120)}

	assert.True(t, p.InCategory("books"))
	assert.False(t, p.InCategory("Toys"))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2021, time.March, 15, 18, 30, 0, 0, time.FixedZone("X", 3600))

	assert.Equal(t, Date(2021, time.March, 15), DateOf(ts))
}

func TestOrder_Total(t *testing.T) {
	order := &Order{
		ID: 1,
		Products: []*Product{
			{ID: 1, Price: decimal.RequireFromString("10.50")},
			{ID: 2, Price: decimal.RequireFromString("4.25")},
		},
	}

	assert.True(t, decimal.RequireFromString("14.75").Equal(order.Total()))
	assert.True(t, decimal.Zero.Equal((&Order{}).Total()))
}

func TestOrder_PlacedBetween(t *testing.T) {
	start := Date(2021, time.February, 1)
	end := Date(2021, time.April, 1)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{name: "Before window", date: Date(2021, time.January, 15), expected: false},
		{name: "On start bound", date: start, expected: false},
		{name: "Inside window", date: Date(2021, time.February, 20), expected: true},
		{name: "Inside window late", date: Date(2021, time.March, 31), expected: true},
		{name: "On end bound", date: end, expected: false},
		{name: "After window", date: Date(2021, time.April, 15), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{OrderDate: tt.date}
			assert.Equal(t, tt.expected, o.PlacedBetween(start, end))
		})
	}
}

func TestOrder_PlacedOnAndIn(t *testing.T) {
	o := &Order{OrderDate: Date(2021, time.March, 15)}

	assert.True(t, o.PlacedOn(Date(2021, time.March, 15)))
	assert.False(t, o.PlacedOn(Date(2021, time.March, 16)))
	assert.True(t, o.PlacedIn(2021, time.March))
	assert.False(t, o.PlacedIn(2021, time.February))
	assert.False(t, o.PlacedIn(2020, time.March))
}

func TestOrder_Tier(t *testing.T) {
	assert.Equal(t, 0, (&Order{}).Tier())
	assert.Equal(t, 2, (&Order{Customer: &Customer{ID: 1, Tier: 2}}).Tier())
}

func TestDomainError_Wrapping(t *testing.T) {
	err := fmt.Errorf("%w: limit must not be negative", ErrInvalidArgument)

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrDuplicateKey))

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrCodeInvalidArgument, domainErr.Code)
}
