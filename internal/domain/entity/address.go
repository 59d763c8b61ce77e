package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved delivery address used to prefill checkout.
type Address struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Label     string       `json:"label"` // "Home", "Office", ...
	Contact   CustomerInfo `json:"contact"`
	IsDefault bool         `json:"is_default"` // At most one per user.
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
