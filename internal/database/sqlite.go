package database

import (
	"context"
	"fmt"

	"streamquery/internal/fixture"
	"streamquery/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens (or creates) a SQLite database through GORM and migrates
// the catalogue tables. Use ":memory:" for a throwaway database.
func OpenSQLite(path string, logger zerolog.Logger) (*gorm.DB, error) {
	logger.Info().Str("path", path).Msg("opening sqlite database")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite connection: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Customer{}, &model.Product{}, &model.Order{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}

	logger.Info().Msg("sqlite database ready")

	return db, nil
}

// SeedGorm inserts the dataset through GORM within one transaction.
func SeedGorm(ctx context.Context, db *gorm.DB, dataset *fixture.Dataset, logger zerolog.Logger) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(dataset.Customers) > 0 {
			if err := tx.Create(dataset.Customers).Error; err != nil {
				return fmt.Errorf("failed to insert customers: %w", err)
			}
		}
		if len(dataset.Products) > 0 {
			if err := tx.Create(dataset.Products).Error; err != nil {
				return fmt.Errorf("failed to insert products: %w", err)
			}
		}
		if len(dataset.Orders) > 0 {
			// Customers and products already exist; only the join rows are new.
			if err := tx.Omit("Customer", "Products.*").Create(dataset.Orders).Error; err != nil {
				return fmt.Errorf("failed to insert orders: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to seed sqlite catalogue")
		return err
	}

	logger.Info().
		Int("customers", len(dataset.Customers)).
		Int("products", len(dataset.Products)).
		Int("orders", len(dataset.Orders)).
		Msg("sqlite catalogue seeded")

	return nil
}
