package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	svc := NewQRCodeService("https://shop.example.com/", 256, "M")
	orderID := uuid.MustParse("7d3b7c1e-6a0e-4c7a-9b8e-2d7f1e1b2c3d")

	assert.Equal(t, "https://shop.example.com/order-confirmation/7d3b7c1e-6a0e-4c7a-9b8e-2d7f1e1b2c3d", svc.TrackingURL(orderID))
}

func TestQRCodeService_GenerateOrderTrackingQR(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Medium QR", 256, 256},
		{"Default size", 0, defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService("http://localhost:5173", tt.size, "M")

			pngBytes, err := svc.GenerateOrderTrackingQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}
