package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product is flagged on the dashboard.
const LowStockThreshold = 10

// Product is a catalog item.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"` // List price before discount.
	Discount      *int             `json:"discount,omitempty"`       // Percent off, informational.
	Images        []string         `json:"images"`
	Category      string           `json:"category"`    // Category display name, denormalized for filtering.
	CategoryID    *uuid.UUID       `json:"category_id"` // Nil for products not yet filed under a category.
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Stock         int              `json:"stock"`
	Featured      bool             `json:"featured"`
	Trending      bool             `json:"trending"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PrimaryImage returns the first image or "" if the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// IsLowStock reports whether stock dropped under LowStockThreshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// CanFulfil reports whether qty units can be sold right now.
func (p *Product) CanFulfil(qty int) bool {
	return p.IsActive && qty >= 1 && p.Stock >= qty
}

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Category        string // Case-insensitive substring match on the category name.
	Search          string // Case-insensitive substring match on name or description.
	Featured        *bool
	Trending        *bool
	IncludeInactive bool // Admin listings see inactive products too.
	Limit           int
	Offset          int
}
