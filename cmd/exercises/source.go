package main

import (
	"context"
	"fmt"

	"streamquery/internal/config"
	"streamquery/internal/database"
	"streamquery/internal/fixture"
	"streamquery/internal/repository"

	"github.com/rs/zerolog"
)

// openSource builds the repositories for the configured source. The returned
// func releases the source's connections.
func openSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.Repositories, func(), error) {
	switch cfg.Source.Driver {
	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		if cfg.Source.Seed {
			dataset, err := fixture.Load(ctx, cfg.Source.FixturePath, logger)
			if err == nil {
				err = database.Reset(ctx, pool, dataset, logger)
			}
			if err != nil {
				pool.Close()
				return repository.Repositories{}, nil, err
			}
		}
		return repository.NewPostgresRepositories(pool, logger), pool.Close, nil

	case config.SourceSQLite:
		db, err := database.OpenSQLite(cfg.Source.SQLitePath, logger)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return repository.Repositories{}, nil, fmt.Errorf("failed to access sqlite connection: %w", err)
		}
		closeDB := func() {
			if err := sqlDB.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close sqlite database")
			}
		}
		if cfg.Source.Seed {
			dataset, err := fixture.Load(ctx, cfg.Source.FixturePath, logger)
			if err == nil {
				err = database.SeedGorm(ctx, db, dataset, logger)
			}
			if err != nil {
				closeDB()
				return repository.Repositories{}, nil, err
			}
		}
		return repository.NewGormRepositories(db, logger), closeDB, nil

	default:
		dataset, err := fixture.Load(ctx, cfg.Source.FixturePath, logger)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		return repository.NewMemoryRepositories(dataset), func() {}, nil
	}
}
