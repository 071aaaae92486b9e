package repository

import (
	"context"
	"fmt"

	"streamquery/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type gormCustomerRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

type gormProductRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

type gormOrderRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGormRepositories creates GORM-backed accessors sharing db.
func NewGormRepositories(db *gorm.DB, logger zerolog.Logger) Repositories {
	return Repositories{
		Customers: &gormCustomerRepository{db: db, logger: logger.With().Str("repository", "gorm-customer").Logger()},
		Products:  &gormProductRepository{db: db, logger: logger.With().Str("repository", "gorm-product").Logger()},
		Orders:    &gormOrderRepository{db: db, logger: logger.With().Str("repository", "gorm-order").Logger()},
	}
}

func (r *gormCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	customers := []*model.Customer{}
	if err := r.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	return customers, nil
}

func (r *gormProductRepository) FindAll(ctx context.Context) ([]*model.Product, error) {
	products := []*model.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// FindAll preloads each order's customer and products. Products of an order
// are returned in ID order.
func (r *gormOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	orders := []*model.Order{}
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("product.id")
		}).
		Order("id").
		Find(&orders).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	return orders, nil
}
