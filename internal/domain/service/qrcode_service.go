package service

import "github.com/google/uuid"

// QRCodeService renders order-tracking QR codes.
type QRCodeService interface {
	// TrackingURL is the page the QR code points at.
	TrackingURL(orderID uuid.UUID) string
	// GenerateOrderTrackingQR returns a PNG encoding TrackingURL(orderID).
	GenerateOrderTrackingQR(orderID uuid.UUID) ([]byte, error)
}
