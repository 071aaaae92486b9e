package database

import (
	"context"
	"fmt"
	"time"

	"streamquery/internal/fixture"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Seed inserts the dataset into the catalogue tables within one transaction.
func Seed(ctx context.Context, pool *pgxpool.Pool, dataset *fixture.Dataset, logger zerolog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	for _, c := range dataset.Customers {
		batch.Queue(`INSERT INTO customer (id, name, tier) VALUES ($1, $2, $3)`, c.ID, c.Name, c.Tier)
	}
	for _, p := range dataset.Products {
		batch.Queue(`INSERT INTO product (id, name, category, price) VALUES ($1, $2, $3, $4)`,
			p.ID, p.Name, p.Category, p.Price)
	}
	for _, o := range dataset.Orders {
		batch.Queue(`INSERT INTO product_order (id, customer_id, order_date, delivery_date, status) VALUES ($1, $2, $3, $4, $5)`,
			o.ID, o.CustomerID, o.OrderDate, nullableDate(o.DeliveryDate), o.Status)
	}
	relationships := 0
	for _, o := range dataset.Orders {
		for _, p := range o.Products {
			batch.Queue(`INSERT INTO order_product_relationship (order_id, product_id) VALUES ($1, $2)`, o.ID, p.ID)
			relationships++
		}
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			logger.Error().Err(err).Int("statement", i).Msg("failed to seed catalogue")
			return fmt.Errorf("failed to seed catalogue: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to seed catalogue: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info().
		Int("customers", len(dataset.Customers)).
		Int("products", len(dataset.Products)).
		Int("orders", len(dataset.Orders)).
		Int("order_products", relationships).
		Msg("catalogue seeded")

	return nil
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// Reset creates the schema if needed, empties the catalogue tables and seeds
// dataset.
func Reset(ctx context.Context, pool *pgxpool.Pool, dataset *fixture.Dataset, logger zerolog.Logger) error {
	if err := CreateSchema(ctx, pool); err != nil {
		return err
	}
	if err := Truncate(ctx, pool); err != nil {
		return err
	}
	return Seed(ctx, pool, dataset, logger)
}
