// Package fixture provides the datasets the repositories serve: a built-in
// default and JSON Lines files.
package fixture

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"streamquery/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Record kinds accepted in fixture files.
const (
	KindCustomer = "customer"
	KindProduct  = "product"
	KindOrder    = "order"
)

const dateLayout = "2006-01-02"

// Loader defines the interface for loading fixture files.
type Loader interface {
	// Load reads a fixture file and returns the linked dataset.
	Load(ctx context.Context, path string) (*Dataset, error)
}

// record is one line of a fixture file. Fields irrelevant to Kind are ignored.
type record struct {
	Kind         string           `json:"kind"`
	ID           int64            `json:"id"`
	Name         string           `json:"name,omitempty"`
	Tier         int              `json:"tier,omitempty"`
	Category     string           `json:"category,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	CustomerID   int64            `json:"customerId,omitempty"`
	OrderDate    string           `json:"orderDate,omitempty"`
	DeliveryDate string           `json:"deliveryDate,omitempty"`
	Status       string           `json:"status,omitempty"`
	ProductIDs   []int64          `json:"productIds,omitempty"`
}

// fileLoader implements Loader for JSON Lines files, optionally gzipped.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based fixture loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "fixture-loader").Logger(),
	}
}

// Load reads a fixture file with one JSON record per line. Files ending in
// ".gz" are decompressed. Blank lines and lines starting with '#' are skipped.
func (l *fileLoader) Load(ctx context.Context, path string) (*Dataset, error) {
	l.logger.Info().Str("file", path).Msg("loading fixture file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open fixture file")
		return nil, fmt.Errorf("failed to open fixture file %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			l.logger.Error().Err(err).Str("file", path).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	dataset, err := l.read(ctx, r)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read fixture file")
		return nil, fmt.Errorf("error reading fixture file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("customers", len(dataset.Customers)).
		Int("products", len(dataset.Products)).
		Int("orders", len(dataset.Orders)).
		Msg("fixture file loaded successfully")

	return dataset, nil
}

// Load reads the fixture file at path, or returns the built-in dataset when
// path is empty.
func Load(ctx context.Context, path string, logger zerolog.Logger) (*Dataset, error) {
	if path == "" {
		logger.Info().Msg("using built-in fixture")
		return Default(), nil
	}
	return NewFileLoader(logger).Load(ctx, path)
}

func (l *fileLoader) read(ctx context.Context, r io.Reader) (*Dataset, error) {
	dataset := &Dataset{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		if lineNo%1000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rec record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", model.ErrInvalidFixture, lineNo, err)
		}
		if err := dataset.add(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := dataset.Link(); err != nil {
		return nil, err
	}
	return dataset, nil
}

func (d *Dataset) add(rec record) error {
	switch rec.Kind {
	case KindCustomer:
		d.Customers = append(d.Customers, &model.Customer{ID: rec.ID, Name: rec.Name, Tier: rec.Tier})
	case KindProduct:
		if rec.Price == nil {
			return fmt.Errorf("%w: product %d has no price", model.ErrInvalidFixture, rec.ID)
		}
		d.Products = append(d.Products, &model.Product{
			ID:       rec.ID,
			Name:     rec.Name,
			Category: rec.Category,
			Price:    *rec.Price,
		})
	case KindOrder:
		orderDate, err := parseDate(rec.OrderDate)
		if err != nil {
			return fmt.Errorf("%w: order %d: order date: %v", model.ErrInvalidFixture, rec.ID, err)
		}
		var deliveryDate time.Time
		if rec.DeliveryDate != "" {
			if deliveryDate, err = parseDate(rec.DeliveryDate); err != nil {
				return fmt.Errorf("%w: order %d: delivery date: %v", model.ErrInvalidFixture, rec.ID, err)
			}
		}
		status := rec.Status
		if status == "" {
			status = model.OrderStatusNew
		}
		d.Orders = append(d.Orders, &model.Order{
			ID:           rec.ID,
			CustomerID:   rec.CustomerID,
			OrderDate:    orderDate,
			DeliveryDate: deliveryDate,
			Status:       status,
			Products:     productRefs(rec.ProductIDs...),
		})
	default:
		return fmt.Errorf("%w: unknown record kind %q", model.ErrInvalidFixture, rec.Kind)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return model.DateOf(t), nil
}
