package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Product represents an item in the catalogue.
type Product struct {
	ID       int64           `json:"id" db:"id" gorm:"primaryKey"`
	Name     string          `json:"name" db:"name" gorm:"size:255;not null"`
	Category string          `json:"category" db:"category" gorm:"size:100;not null;index"`
	Price    decimal.Decimal `json:"price" db:"price" gorm:"type:decimal(10,2);not null"`
}

// TableName overrides the GORM table name.
func (Product) TableName() string {
	return "product"
}

// InCategory reports whether the product belongs to category, ignoring case.
func (p *Product) InCategory(category string) bool {
	return CategoryEquals(p.Category, category)
}

// CategoryEquals compares two category labels case-insensitively. Labels are
// equal exactly when they share a CategoryKey.
func CategoryEquals(a, b string) bool {
	return CategoryKey(a) == CategoryKey(b)
}

// CategoryKey returns the case-folded form of a category label, suitable as a
// grouping key. Labels that are CategoryEquals share the same key.
func CategoryKey(category string) string {
	return cases.Fold().String(strings.TrimSpace(category))
}
