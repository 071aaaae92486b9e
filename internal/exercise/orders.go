package exercise

import (
	"context"
	"time"

	"streamquery/internal/model"
	"streamquery/internal/query"

	"github.com/shopspring/decimal"
)

var byOrderDate = query.ComparingFunc(func(o *model.Order) time.Time { return o.OrderDate }, time.Time.Compare)

func placedOn(date time.Time) query.Predicate[*model.Order] {
	return func(o *model.Order) bool { return o.PlacedOn(date) }
}

func addTotal(sum decimal.Decimal, o *model.Order) decimal.Decimal {
	return sum.Add(o.Total())
}

// OrdersWithCategory returns the orders containing at least one product of
// category.
func (e *Exercises) OrdersWithCategory(ctx context.Context, category string) ([]*model.Order, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	matches := inCategory(category)
	return query.Filter(orders, func(o *model.Order) bool {
		found, _ := query.AnyMatch(o.Products, matches)
		return found
	})
}

// ProductsOrderedByTierBetween returns the distinct products of the orders
// placed strictly between start and end by customers of tier, in order of
// first appearance.
func (e *Exercises) ProductsOrderedByTierBetween(ctx context.Context, tier int, start, end time.Time) ([]*model.Product, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	ofTier := query.Predicate[*model.Order](func(o *model.Order) bool { return o.Tier() == tier })
	inWindow := query.Predicate[*model.Order](func(o *model.Order) bool { return o.PlacedBetween(start, end) })

	q := query.Expand(query.From(orders).Where(ofTier.And(inWindow)), orderProducts)
	return query.Distinct(q, productID).Result()
}

// MostRecentOrders returns the n latest orders. Orders placed on the same day
// keep the order they are served in.
func (e *Exercises) MostRecentOrders(ctx context.Context, n int) ([]*model.Order, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return query.From(orders).OrderBy(byOrderDate, query.Descending).Take(n).Result()
}

// ProductsOrderedOn returns the distinct products of the orders placed on date.
func (e *Exercises) ProductsOrderedOn(ctx context.Context, date time.Time) ([]*model.Product, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	placed, err := query.Filter(orders, placedOn(date))
	if err != nil {
		return nil, err
	}
	return query.FlattenDistinct(placed, orderProducts, productID)
}

// TotalForMonth sums the totals of the orders placed in the calendar month.
func (e *Exercises) TotalForMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	totals, err := query.Select(query.From(orders).Where(func(o *model.Order) bool {
		return o.PlacedIn(year, month)
	}), (*model.Order).Total).Result()
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Sum(decimal.Zero, totals...), nil
}

// TotalForMonthReduced is TotalForMonth computed with a single fold.
func (e *Exercises) TotalForMonthReduced(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return query.Reduce(orders, decimal.Zero, func(sum decimal.Decimal, o *model.Order) decimal.Decimal {
		if !o.PlacedIn(year, month) {
			return sum
		}
		return addTotal(sum, o)
	})
}

// AverageProductPriceOn averages the prices of the products of the orders
// placed on date. A product bought in two orders counts twice. Without orders
// the average is zero.
func (e *Exercises) AverageProductPriceOn(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	products, err := query.Expand(query.From(orders).Where(placedOn(date)), orderProducts).Result()
	if err != nil {
		return decimal.Zero, err
	}
	summary, err := query.SummarizeBy(products, productPrice)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.Average, nil
}

// ProductCountByOrder maps every order id to the number of its products.
func (e *Exercises) ProductCountByOrder(ctx context.Context) (*query.OrderedMap[int64, int], error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return query.ToMap(orders, orderID, func(o *model.Order) int { return len(o.Products) })
}

// OrdersByCustomer groups the orders by their customer.
func (e *Exercises) OrdersByCustomer(ctx context.Context) (*query.OrderedMap[model.Customer, []*model.Order], error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return query.GroupBy(orders, func(o *model.Order) model.Customer {
		if o.Customer == nil {
			return model.Customer{ID: o.CustomerID}
		}
		return *o.Customer
	})
}

// OrderIDsByCustomerID maps every customer id, in the order customers are
// served, to the ids of its orders. Customers without orders map to an empty
// list.
func (e *Exercises) OrderIDsByCustomerID(ctx context.Context) (*query.OrderedMap[int64, []int64], error) {
	customers, err := e.loadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	placed, err := query.GroupByMapping(orders, func(o *model.Order) int64 { return o.CustomerID }, orderID)
	if err != nil {
		return nil, err
	}
	return query.ToMap(customers, func(c *model.Customer) int64 { return c.ID }, func(c *model.Customer) []int64 {
		ids, ok := placed.Get(c.ID)
		if !ok {
			return []int64{}
		}
		return ids
	})
}

// TotalByOrder maps every order id to its total.
func (e *Exercises) TotalByOrder(ctx context.Context) (*query.OrderedMap[int64, decimal.Decimal], error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return query.ToMap(orders, orderID, (*model.Order).Total)
}

// TotalByOrderReduced is TotalByOrder with every total folded from the order's
// product prices.
func (e *Exercises) TotalByOrderReduced(ctx context.Context) (*query.OrderedMap[int64, decimal.Decimal], error) {
	orders, err := e.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return query.ToMap(orders, orderID, func(o *model.Order) decimal.Decimal {
		total, _ := query.Reduce(o.Products, decimal.Zero, func(sum decimal.Decimal, p *model.Product) decimal.Decimal {
			return sum.Add(p.Price)
		})
		return total
	})
}
