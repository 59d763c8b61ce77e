package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType drives how a client renders a notification.
type NotificationType string

const (
	NotificationTypeInfo        NotificationType = "info"
	NotificationTypeSuccess     NotificationType = "success"
	NotificationTypeWarning     NotificationType = "warning"
	NotificationTypeError       NotificationType = "error"
	NotificationTypePriceUpdate NotificationType = "price_update"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeSuccess, NotificationTypeWarning, NotificationTypeError, NotificationTypePriceUpdate:
		return true
	default:
		return false
	}
}

// NotificationMetadata carries structured context for price updates and order events.
type NotificationMetadata struct {
	OrderID     string           `json:"order_id,omitempty"`
	OrderNumber string           `json:"order_number,omitempty"`
	OldPrice    *decimal.Decimal `json:"old_price,omitempty"`
	NewPrice    *decimal.Decimal `json:"new_price,omitempty"`
	ProductName string           `json:"product_name,omitempty"`
}

// Notification is an in-app message. Global notifications have no UserID and
// are shown to everyone; Read is resolved per viewer.
type Notification struct {
	ID        uuid.UUID             `json:"id"`
	UserID    *uuid.UUID            `json:"user_id"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Type      NotificationType      `json:"type"`
	IsGlobal  bool                  `json:"is_global"`
	Read      bool                  `json:"read"`
	Metadata  *NotificationMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// IsVisibleTo reports whether userID should see n.
func (n *Notification) IsVisibleTo(userID uuid.UUID) bool {
	return n.IsGlobal || (n.UserID != nil && *n.UserID == userID)
}

// NewPriceUpdateNotification tells the owner of a customization order its new quote.
func NewPriceUpdateNotification(userID uuid.UUID, order *Order, productName string, oldPrice, newPrice decimal.Decimal, now time.Time) *Notification {
	oldP, newP := oldPrice, newPrice

	return &Notification{
		ID:     uuid.New(),
		UserID: &userID,
		Title:  PriceUpdateTitle,
		Message: fmt.Sprintf("The price for your \"%s\" customization has been updated from ₹%s to ₹%s",
			productName, oldPrice.String(), newPrice.String()),
		Type: NotificationTypePriceUpdate,
		Metadata: &NotificationMetadata{
			OrderID:     order.ID.String(),
			OrderNumber: order.OrderNumber,
			OldPrice:    &oldP,
			NewPrice:    &newP,
			ProductName: productName,
		},
		CreatedAt: now,
	}
}
