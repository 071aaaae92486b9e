package exercise

import (
	"context"

	"streamquery/internal/model"
	"streamquery/internal/query"

	"github.com/shopspring/decimal"
)

// Category labels used by the fixed exercises.
const (
	CategoryBooks = "Books"
	CategoryToys  = "Toys"
	CategoryBaby  = "Baby"
)

var (
	hundred       = decimal.NewFromInt(100)
	toyDiscount   = decimal.RequireFromString("0.9")
	byPrice       = query.ComparingFunc(productPrice, decimal.Decimal.Cmp)
	isBook        = inCategory(CategoryBooks)
	pricedOver100 = priceAbove(hundred)
)

func inCategory(category string) query.Predicate[*model.Product] {
	return func(p *model.Product) bool { return p.InCategory(category) }
}

func priceAbove(limit decimal.Decimal) query.Predicate[*model.Product] {
	return func(p *model.Product) bool { return p.Price.GreaterThan(limit) }
}

// BooksOver100 returns the products of category Books priced above 100.
func (e *Exercises) BooksOver100(ctx context.Context) ([]*model.Product, error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p *model.Product) bool {
		return p.InCategory(CategoryBooks) && p.Price.GreaterThan(hundred)
	})
}

// BooksOver100Chained is BooksOver100 built from two reusable predicates.
func (e *Exercises) BooksOver100Chained(ctx context.Context) ([]*model.Product, error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.From(products).Where(isBook.And(pricedOver100)).Result()
}

// ProductsInCategoryAbove returns the products of category priced above limit.
func (e *Exercises) ProductsInCategoryAbove(ctx context.Context, category string, limit decimal.Decimal) ([]*model.Product, error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, inCategory(category).And(priceAbove(limit)))
}

// DiscountedToys returns the prices of the Toys products after a 10% discount.
func (e *Exercises) DiscountedToys(ctx context.Context) ([]decimal.Decimal, error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.Select(query.From(products).Where(inCategory(CategoryToys)), func(p *model.Product) decimal.Decimal {
		return p.Price.Mul(toyDiscount)
	}).Result()
}

// CheapestBooks returns the n cheapest Books products, cheapest first.
func (e *Exercises) CheapestBooks(ctx context.Context, n int) ([]*model.Product, error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.From(products).
		Where(isBook).
		OrderBy(byPrice, query.Ascending).
		Take(n).
		Result()
}

// CategoryStatistics summarizes the prices of the products in category.
func (e *Exercises) CategoryStatistics(ctx context.Context, category string) (query.Summary, error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return query.Summary{}, err
	}
	matching, err := query.Filter(products, inCategory(category))
	if err != nil {
		return query.Summary{}, err
	}
	return query.SummarizeBy(matching, productPrice)
}

// ProductNamesByCategory groups product names by case-folded category.
func (e *Exercises) ProductNamesByCategory(ctx context.Context) (*query.OrderedMap[string, []string], error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.GroupByMapping(products, productCategory, func(p *model.Product) string { return p.Name })
}

// MostExpensiveByCategory returns the most expensive product of every
// case-folded category. Among equally priced products the one served first
// wins.
func (e *Exercises) MostExpensiveByCategory(ctx context.Context) (*query.OrderedMap[string, *model.Product], error) {
	products, err := e.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return query.BestBy(products, productCategory, byPrice)
}

// MostExpensiveNameByCategory is MostExpensiveByCategory reduced to names.
func (e *Exercises) MostExpensiveNameByCategory(ctx context.Context) (*query.OrderedMap[string, string], error) {
	best, err := e.MostExpensiveByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return query.ToMap(best.Values(), productCategory, func(p *model.Product) string { return p.Name })
}
