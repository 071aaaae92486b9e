// Package exercise answers the catalogue's business questions. Every answer is
// a fixed pipeline of query operators over the collections served by the
// repositories.
package exercise

import (
	"context"
	"fmt"

	"streamquery/internal/model"
	"streamquery/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Exercises runs the named queries against the injected repositories.
type Exercises struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	sessionID uuid.UUID
	logger    zerolog.Logger
}

// New creates an exercise session over repos. Every log line of the session
// carries the same session id.
func New(repos repository.Repositories, logger zerolog.Logger) *Exercises {
	sessionID := uuid.New()
	return &Exercises{
		customers: repos.Customers,
		products:  repos.Products,
		orders:    repos.Orders,
		sessionID: sessionID,
		logger: logger.With().
			Str("component", "exercise").
			Str("session_id", sessionID.String()).
			Logger(),
	}
}

// SessionID identifies this session in the logs.
func (e *Exercises) SessionID() uuid.UUID {
	return e.sessionID
}

func (e *Exercises) loadCustomers(ctx context.Context) ([]*model.Customer, error) {
	customers, err := e.customers.FindAll(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to load customers")
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return customers, nil
}

func (e *Exercises) loadProducts(ctx context.Context) ([]*model.Product, error) {
	products, err := e.products.FindAll(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to load products")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (e *Exercises) loadOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := e.orders.FindAll(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to load orders")
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func productID(p *model.Product) int64 { return p.ID }

func productPrice(p *model.Product) decimal.Decimal { return p.Price }

func productCategory(p *model.Product) string { return model.CategoryKey(p.Category) }

func orderProducts(o *model.Order) []*model.Product { return o.Products }

func orderID(o *model.Order) int64 { return o.ID }
