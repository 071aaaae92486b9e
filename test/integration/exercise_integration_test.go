package integration

import (
	"context"
	"encoding/json"
	"testing"

	"streamquery/internal/database/dbtest"
	"streamquery/internal/exercise"
	"streamquery/internal/fixture"
	"streamquery/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCatalog runs every exercise and returns its JSON-encoded result by name.
func runCatalog(t *testing.T, repos repository.Repositories) map[string]string {
	t.Helper()

	ex := exercise.New(repos, zerolog.Nop())
	results := make(map[string]string)
	for _, e := range ex.Catalog() {
		result, err := e.Run(context.Background())
		require.NoError(t, err, "exercise %s", e.Name)

		data, err := json.Marshal(result)
		require.NoError(t, err, "exercise %s", e.Name)
		results[e.Name] = string(data)
	}
	return results
}

func TestExercises_SourcesAgree_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	expected := runCatalog(t, repository.NewMemoryRepositories(fixture.Default()))

	t.Run("PostgreSQL", func(t *testing.T) {
		pg := dbtest.StartPostgres(t)
		pg.Reseed(t, fixture.Default())

		got := runCatalog(t, repository.NewPostgresRepositories(pg.Pool, zerolog.Nop()))

		for name, want := range expected {
			assert.JSONEq(t, want, got[name], "exercise %s", name)
		}
	})

	t.Run("SQLite", func(t *testing.T) {
		db := dbtest.OpenSQLite(t, fixture.Default())

		got := runCatalog(t, repository.NewGormRepositories(db, zerolog.Nop()))

		for name, want := range expected {
			assert.JSONEq(t, want, got[name], "exercise %s", name)
		}
	})
}

func TestExercises_EmptyCatalogue_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pg := dbtest.StartPostgres(t)
	pg.Reseed(t, &fixture.Dataset{})
	ex := exercise.New(repository.NewPostgresRepositories(pg.Pool, zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	books, err := ex.BooksOver100(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	stats, err := ex.CategoryStatistics(ctx, exercise.CategoryBooks)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Count)
	assert.False(t, stats.Min.Valid)
	assert.True(t, stats.Average.IsZero())

	totals, err := ex.TotalByOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, totals.Len())
}
