package fixture

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write encodes dataset as JSON Lines: customers, then products, then orders.
func Write(w io.Writer, dataset *Dataset) error {
	enc := json.NewEncoder(w)
	for _, c := range dataset.Customers {
		if err := enc.Encode(record{Kind: KindCustomer, ID: c.ID, Name: c.Name, Tier: c.Tier}); err != nil {
			return fmt.Errorf("failed to write customer %d: %w", c.ID, err)
		}
	}
	for _, p := range dataset.Products {
		price := p.Price
		rec := record{Kind: KindProduct, ID: p.ID, Name: p.Name, Category: p.Category, Price: &price}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write product %d: %w", p.ID, err)
		}
	}
	for _, o := range dataset.Orders {
		rec := record{
			Kind:       KindOrder,
			ID:         o.ID,
			CustomerID: o.CustomerID,
			OrderDate:  o.OrderDate.Format(dateLayout),
			Status:     o.Status,
			ProductIDs: make([]int64, len(o.Products)),
		}
		if !o.DeliveryDate.IsZero() {
			rec.DeliveryDate = o.DeliveryDate.Format(dateLayout)
		}
		for i, p := range o.Products {
			rec.ProductIDs[i] = p.ID
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write order %d: %w", o.ID, err)
		}
	}
	return nil
}

// WriteFile writes dataset to path, gzip-compressed when path ends in ".gz".
func WriteFile(path string, dataset *Dataset) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close fixture file: %w", closeErr)
		}
	}()

	buffered := bufio.NewWriter(file)
	var w io.Writer = buffered
	var gzipWriter *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gzipWriter = gzip.NewWriter(buffered)
		w = gzipWriter
	}

	if err := Write(w, dataset); err != nil {
		return err
	}
	if gzipWriter != nil {
		if err := gzipWriter.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	}
	return buffered.Flush()
}
