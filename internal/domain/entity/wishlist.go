package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem records that a user saved a product.
type WishlistItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"` // Populated by the "with products" listing.
	CreatedAt time.Time `json:"created_at"`
}
