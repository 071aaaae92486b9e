package main

import (
	"context"
	"fmt"
	"os"

	"streamquery/internal/config"
	"streamquery/internal/database"
	"streamquery/internal/fixture"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	dataset, err := fixture.Load(ctx, cfg.Source.FixturePath, logger)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	switch cfg.Source.Driver {
	case config.SourcePostgres:
		return seedPostgres(ctx, cfg.Database, dataset, logger)
	case config.SourceSQLite:
		return seedSQLite(ctx, cfg.Source.SQLitePath, dataset, logger)
	default:
		return fmt.Errorf("cannot seed the %s source: set DATA_SOURCE to postgres or sqlite", cfg.Source.Driver)
	}
}

func seedPostgres(ctx context.Context, cfg config.DatabaseConfig, dataset *fixture.Dataset, logger zerolog.Logger) error {
	pool, err := database.NewPool(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("failed to query current database: %w", err)
	}
	logger.Info().Str("database", dbName).Msg("seeding catalogue")

	if err := database.Reset(ctx, pool, dataset, logger); err != nil {
		return fmt.Errorf("failed to seed %s: %w", dbName, err)
	}
	return nil
}

func seedSQLite(ctx context.Context, path string, dataset *fixture.Dataset, logger zerolog.Logger) error {
	if path == ":memory:" {
		return fmt.Errorf("refusing to seed an in-memory sqlite database: set SQLITE_PATH to a file")
	}

	db, err := database.OpenSQLite(path, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sqlite connection: %w", err)
	}
	defer sqlDB.Close()

	return database.SeedGorm(ctx, db, dataset, logger)
}
