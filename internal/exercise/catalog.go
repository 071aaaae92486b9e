package exercise

import (
	"context"
	"time"

	"streamquery/internal/model"
)

// Parameters of the catalogue's fixed exercises.
var (
	TierWindowStart = model.Date(2021, time.February, 1)
	TierWindowEnd   = model.Date(2021, time.April, 1)
	ReportDate      = model.Date(2021, time.March, 15)
)

const (
	ReportYear  = 2021
	ReportMonth = time.February
	TopN        = 3
)

// Exercise is one named query of the catalogue.
type Exercise struct {
	Name        string
	Description string
	Run         func(ctx context.Context) (any, error)
}

// Catalog lists every exercise with its fixed parameters, in numbering order.
func (e *Exercises) Catalog() []Exercise {
	return []Exercise{
		{"1", "Books with price > 100", wrap(e.BooksOver100)},
		{"1a", "Books with price > 100 (predicate chaining)", wrap(e.BooksOver100Chained)},
		{"1b", "Books with price > 100 (parameterised predicate)", func(ctx context.Context) (any, error) {
			return e.ProductsInCategoryAbove(ctx, CategoryBooks, hundred)
		}},
		{"2", "Orders with products of category Baby", func(ctx context.Context) (any, error) {
			return e.OrdersWithCategory(ctx, CategoryBaby)
		}},
		{"3", "Toys with a 10% discount", wrap(e.DiscountedToys)},
		{"4", "Products ordered by tier 2 customers between 01-Feb-2021 and 01-Apr-2021", func(ctx context.Context) (any, error) {
			return e.ProductsOrderedByTierBetween(ctx, 2, TierWindowStart, TierWindowEnd)
		}},
		{"5", "Three cheapest Books", func(ctx context.Context) (any, error) {
			return e.CheapestBooks(ctx, TopN)
		}},
		{"6", "Three most recent orders", func(ctx context.Context) (any, error) {
			return e.MostRecentOrders(ctx, TopN)
		}},
		{"7", "Products ordered on 15-Mar-2021", func(ctx context.Context) (any, error) {
			return e.ProductsOrderedOn(ctx, ReportDate)
		}},
		{"8", "Total of orders placed in Feb 2021", func(ctx context.Context) (any, error) {
			return e.TotalForMonth(ctx, ReportYear, ReportMonth)
		}},
		{"8a", "Total of orders placed in Feb 2021 (reduce)", func(ctx context.Context) (any, error) {
			return e.TotalForMonthReduced(ctx, ReportYear, ReportMonth)
		}},
		{"9", "Average price of products ordered on 15-Mar-2021", func(ctx context.Context) (any, error) {
			return e.AverageProductPriceOn(ctx, ReportDate)
		}},
		{"10", "Price statistics of category Books", func(ctx context.Context) (any, error) {
			return e.CategoryStatistics(ctx, CategoryBooks)
		}},
		{"11", "Product count by order id", wrap(e.ProductCountByOrder)},
		{"12", "Orders by customer", wrap(e.OrdersByCustomer)},
		{"12a", "Order ids by customer id", wrap(e.OrderIDsByCustomerID)},
		{"13", "Total by order id", wrap(e.TotalByOrder)},
		{"13a", "Total by order id (reduce)", wrap(e.TotalByOrderReduced)},
		{"14", "Product names by category", wrap(e.ProductNamesByCategory)},
		{"15", "Most expensive product by category", wrap(e.MostExpensiveByCategory)},
		{"15a", "Name of the most expensive product by category", wrap(e.MostExpensiveNameByCategory)},
	}
}

func wrap[R any](fn func(context.Context) (R, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return fn(ctx)
	}
}
