package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusNew       = "NEW"
	OrderStatusDelivered = "DELIVERED"
)

// Order represents a customer order. Customer and Products are shared
// references; an order does not own them.
type Order struct {
	ID           int64      `json:"id" db:"id" gorm:"primaryKey"`
	CustomerID   int64      `json:"customerId" db:"customer_id" gorm:"not null;index"`
	Customer     *Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	OrderDate    time.Time  `json:"orderDate" db:"order_date" gorm:"not null"`
	DeliveryDate time.Time  `json:"deliveryDate" db:"delivery_date"`
	Status       string     `json:"status" db:"status" gorm:"size:20;not null"`
	Products     []*Product `json:"products,omitempty" gorm:"many2many:order_product_relationship;joinForeignKey:OrderID;joinReferences:ProductID"`
}

// TableName overrides the GORM table name.
func (Order) TableName() string {
	return "product_order"
}

// Date returns the calendar date year-month-day at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time-of-day and location of t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	return Date(t.Date())
}

// Total returns the sum of the prices of the order's products.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}

// Tier returns the tier of the ordering customer, or 0 if the customer is not
// linked.
func (o *Order) Tier() int {
	if o.Customer == nil {
		return 0
	}
	return o.Customer.Tier
}

// PlacedOn reports whether the order was placed on the given calendar date.
func (o *Order) PlacedOn(date time.Time) bool {
	return DateOf(o.OrderDate).Equal(DateOf(date))
}

// PlacedIn reports whether the order was placed in the given calendar month.
func (o *Order) PlacedIn(year int, month time.Month) bool {
	y, m, _ := o.OrderDate.Date()
	return y == year && m == month
}

// PlacedBetween reports whether start < order date < end. Both bounds are
// exclusive.
func (o *Order) PlacedBetween(start, end time.Time) bool {
	d := DateOf(o.OrderDate)
	return d.After(DateOf(start)) && d.Before(DateOf(end))
}
