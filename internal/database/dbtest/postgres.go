// Package dbtest starts throwaway databases for tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"streamquery/internal/database"
	"streamquery/internal/fixture"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Postgres is a PostgreSQL test container with the catalogue schema created.
type Postgres struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// StartPostgres starts a PostgreSQL container, connects a pool and creates the
// catalogue schema. The container is terminated when the test finishes.
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.Connect(ctx, connStr, database.DefaultPoolOptions(), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, database.CreateSchema(ctx, pool))

	t.Cleanup(func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &Postgres{
		Container: container,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// Reseed empties the catalogue tables and seeds dataset.
func (p *Postgres) Reseed(t *testing.T, dataset *fixture.Dataset) {
	t.Helper()

	require.NoError(t, database.Reset(context.Background(), p.Pool, dataset, zerolog.Nop()))
}

// OpenSQLite opens a migrated in-memory SQLite database seeded with dataset.
// The database is closed when the test finishes.
func OpenSQLite(t *testing.T, dataset *fixture.Dataset) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if dataset != nil {
		require.NoError(t, database.SeedGorm(context.Background(), db, dataset, zerolog.Nop()))
	}
	return db
}
