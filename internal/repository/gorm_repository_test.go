package repository

import (
	"context"
	"testing"

	"streamquery/internal/database/dbtest"
	"streamquery/internal/fixture"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormRepositories_FindAll(t *testing.T) {
	dataset := fixture.Default()
	db := dbtest.OpenSQLite(t, dataset)

	repos := NewGormRepositories(db, zerolog.Nop())

	assertServesDataset(t, repos, dataset, false)
}

func TestGormRepositories_Empty(t *testing.T) {
	db := dbtest.OpenSQLite(t, nil)
	repos := NewGormRepositories(db, zerolog.Nop())
	ctx := context.Background()

	orders, err := repos.Orders.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	customers, err := repos.Customers.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestGormRepositories_ClosedDatabase(t *testing.T) {
	db := dbtest.OpenSQLite(t, nil)
	repos := NewGormRepositories(db, zerolog.Nop())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repos.Products.FindAll(context.Background())
	assert.ErrorContains(t, err, "failed to query products")
}
