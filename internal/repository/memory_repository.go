package repository

import (
	"context"
	"slices"

	"streamquery/internal/fixture"
	"streamquery/internal/model"
)

type memoryCustomerRepository struct {
	customers []*model.Customer
}

type memoryProductRepository struct {
	products []*model.Product
}

type memoryOrderRepository struct {
	orders []*model.Order
}

// NewMemoryRepositories serves a linked dataset from memory. Every FindAll
// returns a new slice holding the dataset's shared entity pointers, in
// dataset order.
func NewMemoryRepositories(dataset *fixture.Dataset) Repositories {
	return Repositories{
		Customers: &memoryCustomerRepository{customers: dataset.Customers},
		Products:  &memoryProductRepository{products: dataset.Products},
		Orders:    &memoryOrderRepository{orders: dataset.Orders},
	}
}

func (r *memoryCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.customers), nil
}

func (r *memoryProductRepository) FindAll(ctx context.Context) ([]*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.products), nil
}

func (r *memoryOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.orders), nil
}
