package repository

import (
	"context"

	"streamquery/internal/model"
)

// CustomerRepository provides read-only access to customers.
type CustomerRepository interface {
	// FindAll returns every customer, ordered by ID.
	FindAll(ctx context.Context) ([]*model.Customer, error)
}

// ProductRepository provides read-only access to products.
type ProductRepository interface {
	// FindAll returns every product, ordered by ID.
	FindAll(ctx context.Context) ([]*model.Product, error)
}

// OrderRepository provides read-only access to orders.
type OrderRepository interface {
	// FindAll returns every order, ordered by ID, with its customer and
	// products linked.
	FindAll(ctx context.Context) ([]*model.Order, error)
}

// Repositories bundles the accessors for the three entity types.
type Repositories struct {
	Customers CustomerRepository
	Products  ProductRepository
	Orders    OrderRepository
}
