package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the PostgreSQL DDL for the catalogue tables.
const Schema = `
	CREATE TABLE IF NOT EXISTS customer (
		id BIGINT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		tier INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS product (
		id BIGINT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL,
		price DECIMAL(10, 2) NOT NULL CHECK (price >= 0)
	);

	CREATE TABLE IF NOT EXISTS product_order (
		id BIGINT PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customer(id),
		order_date DATE NOT NULL,
		delivery_date DATE,
		status VARCHAR(20) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS order_product_relationship (
		order_id BIGINT NOT NULL REFERENCES product_order(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES product(id),
		PRIMARY KEY (order_id, product_id)
	);

	CREATE INDEX IF NOT EXISTS idx_product_category ON product(category);
	CREATE INDEX IF NOT EXISTS idx_product_order_customer_id ON product_order(customer_id);
	CREATE INDEX IF NOT EXISTS idx_product_order_order_date ON product_order(order_date);
	CREATE INDEX IF NOT EXISTS idx_order_product_relationship_product_id ON order_product_relationship(product_id);
`

// CreateSchema creates the catalogue tables if they do not exist.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Truncate removes every row from the catalogue tables.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE order_product_relationship, product_order, product, customer CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
