package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPostgresRepositories creates PostgreSQL-backed accessors sharing pool.
func NewPostgresRepositories(pool *pgxpool.Pool, logger zerolog.Logger) Repositories {
	return Repositories{
		Customers: NewCustomerRepository(pool, logger),
		Products:  NewProductRepository(pool, logger),
		Orders:    NewOrderRepository(pool, logger),
	}
}
