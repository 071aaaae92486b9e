package repository

import (
	"context"
	"fmt"
	"time"

	"streamquery/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// FindAll retrieves all orders with their customers and products. Orders
// placed by the same customer share one *model.Customer, and orders
// containing the same product share one *model.Product. Products of an order
// are returned in ID order.
func (r *orderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	orderQuery := `
		SELECT o.id, o.order_date, o.delivery_date, o.status, c.id, c.name, c.tier
		FROM product_order o
		JOIN customer c ON c.id = o.customer_id
		ORDER BY o.id
	`

	rows, err := r.pool.Query(ctx, orderQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []*model.Order{}
	byID := make(map[int64]*model.Order)
	customers := make(map[int64]*model.Customer)
	for rows.Next() {
		var (
			o            model.Order
			c            model.Customer
			deliveryDate *time.Time
		)
		if err := rows.Scan(&o.ID, &o.OrderDate, &deliveryDate, &o.Status, &c.ID, &c.Name, &c.Tier); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if deliveryDate != nil {
			o.DeliveryDate = *deliveryDate
		}

		shared, ok := customers[c.ID]
		if !ok {
			shared = &c
			customers[c.ID] = shared
		}
		o.CustomerID = shared.ID
		o.Customer = shared
		o.Products = []*model.Product{}

		orders = append(orders, &o)
		byID[o.ID] = &o
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	rows.Close()

	if err := r.attachProducts(ctx, byID); err != nil {
		return nil, err
	}

	r.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// attachProducts loads the order/product relationships and appends the
// products to their orders.
func (r *orderRepository) attachProducts(ctx context.Context, orders map[int64]*model.Order) error {
	productsQuery := `
		SELECT r.order_id, p.id, p.name, p.category, p.price
		FROM order_product_relationship r
		JOIN product p ON p.id = r.product_id
		ORDER BY r.order_id, p.id
	`

	rows, err := r.pool.Query(ctx, productsQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order products")
		return fmt.Errorf("failed to query order products: %w", err)
	}
	defer rows.Close()

	products := make(map[int64]*model.Product)
	for rows.Next() {
		var (
			orderID int64
			p       model.Product
		)
		if err := rows.Scan(&orderID, &p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order product row")
			return fmt.Errorf("failed to scan order product: %w", err)
		}

		shared, ok := products[p.ID]
		if !ok {
			shared = &p
			products[p.ID] = shared
		}

		order, ok := orders[orderID]
		if !ok {
			// The order was inserted after the order query ran.
			r.logger.Warn().Int64("order_id", orderID).Msg("skipping products of unknown order")
			continue
		}
		order.Products = append(order.Products, shared)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order product rows")
		return fmt.Errorf("error iterating order products: %w", err)
	}

	return nil
}
