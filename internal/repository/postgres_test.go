package repository

import (
	"context"
	"testing"

	"streamquery/internal/database/dbtest"
	"streamquery/internal/fixture"
	"streamquery/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepositories_FindAll(t *testing.T) {
	pg := dbtest.StartPostgres(t)
	dataset := fixture.Default()
	pg.Reseed(t, dataset)

	repos := NewPostgresRepositories(pg.Pool, zerolog.Nop())

	assertServesDataset(t, repos, dataset, true)
}

func TestPostgresRepositories_SharesEntities(t *testing.T) {
	pg := dbtest.StartPostgres(t)
	pg.Reseed(t, fixture.Default())

	orders, err := NewOrderRepository(pg.Pool, zerolog.Nop()).FindAll(context.Background())
	require.NoError(t, err)

	byID := make(map[int64]*model.Order)
	for _, o := range orders {
		byID[o.ID] = o
	}

	// Orders 2 and 5 belong to customer 4; orders 1 and 13 both contain product 1.
	assert.Same(t, byID[2].Customer, byID[5].Customer)
	assert.Same(t, byID[1].Products[0], byID[13].Products[0])
}

func TestPostgresRepositories_Empty(t *testing.T) {
	pg := dbtest.StartPostgres(t)
	pg.Reseed(t, &fixture.Dataset{})

	repos := NewPostgresRepositories(pg.Pool, zerolog.Nop())
	ctx := context.Background()

	customers, err := repos.Customers.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)

	products, err := repos.Products.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	orders, err := repos.Orders.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPostgresRepositories_OrderWithoutDeliveryDate(t *testing.T) {
	pg := dbtest.StartPostgres(t)
	dataset := &fixture.Dataset{
		Customers: []*model.Customer{{ID: 1, Name: "Ada", Tier: 2}},
		Products:  []*model.Product{{ID: 1, Name: "Go in Action", Category: "Books", Price: decimal.RequireFromString("120.00")}},
		Orders: []*model.Order{{
			ID:         1,
			CustomerID: 1,
			OrderDate:  model.Date(2021, 3, 15),
			Status:     model.OrderStatusNew,
			Products:   []*model.Product{{ID: 1}},
		}},
	}
	require.NoError(t, dataset.Link())
	pg.Reseed(t, dataset)

	orders, err := NewOrderRepository(pg.Pool, zerolog.Nop()).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.True(t, orders[0].DeliveryDate.IsZero())
	assert.Equal(t, "120", orders[0].Products[0].Price.String())
}

func TestPostgresRepositories_ClosedPool(t *testing.T) {
	pg := dbtest.StartPostgres(t)
	repos := NewPostgresRepositories(pg.Pool, zerolog.Nop())
	pg.Pool.Close()

	ctx := context.Background()

	_, err := repos.Customers.FindAll(ctx)
	assert.ErrorContains(t, err, "failed to query customers")
	_, err = repos.Products.FindAll(ctx)
	assert.ErrorContains(t, err, "failed to query products")
	_, err = repos.Orders.FindAll(ctx)
	assert.ErrorContains(t, err, "failed to query orders")
}
