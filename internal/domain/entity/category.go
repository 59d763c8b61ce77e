package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups products for browsing.
type Category struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image,omitempty"`
	ProductCount int       `json:"product_count"` // Derived; not stored.
	CreatedAt    time.Time `json:"created_at"`
}

// Slugify lowercases name, turns every run of characters outside [a-z0-9]
// into a single '-' and trims leading and trailing dashes.
// "Kids' T-Shirts" -> "kids-t-shirts".
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)

			continue
		}
		pendingDash = true
	}

	return b.String()
}
