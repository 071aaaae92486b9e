package exercise

import (
	"context"
	"testing"
	"time"

	"streamquery/internal/fixture"
	"streamquery/internal/model"
	"streamquery/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func newTestExercises(dataset *fixture.Dataset) *Exercises {
	return New(repository.NewMemoryRepositories(dataset), zerolog.Nop())
}

// linked builds a dataset from customers, products and orders and links it.
func linked(t *testing.T, customers []*model.Customer, products []*model.Product, orders []*model.Order) *fixture.Dataset {
	t.Helper()
	d := &fixture.Dataset{Customers: customers, Products: products, Orders: orders}
	require.NoError(t, d.Link())
	return d
}

func newProduct(id int64, category, price string) *model.Product {
	return &model.Product{ID: id, Name: category + " item", Category: category, Price: decimal.RequireFromString(price)}
}

func newOrder(id, customerID int64, placed time.Time, productIDs ...int64) *model.Order {
	products := make([]*model.Product, len(productIDs))
	for i, pid := range productIDs {
		products[i] = &model.Product{ID: pid}
	}
	return &model.Order{ID: id, CustomerID: customerID, OrderDate: placed, Status: model.OrderStatusNew, Products: products}
}

func productIDs(products []*model.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func orderIDs(orders []*model.Order) []int64 {
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func assertDecimals(t *testing.T, expected []string, actual []decimal.Decimal) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assertDecimal(t, expected[i], actual[i])
	}
}
