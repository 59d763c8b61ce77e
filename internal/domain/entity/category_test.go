package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"T-Shirts":            "t-shirts",
		"Kids' T-Shirts":      "kids-t-shirts",
		"  Home & Living  ":   "home-living",
		"Caps2024":            "caps2024",
		"--Already--Dashed--": "already-dashed",
		"Café Décor":          "caf-d-cor",
		"!!!":                 "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Slugify(in))
		})
	}
}
