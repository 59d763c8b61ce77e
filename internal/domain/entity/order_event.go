package entity

import "time"

// OrderEventKind names what happened to an order.
type OrderEventKind string

const (
	OrderEventPlaced        OrderEventKind = "order.placed"
	OrderEventStatusChanged OrderEventKind = "order.status_changed"
	OrderEventQuoted        OrderEventKind = "order.quoted"
)

// OrderEvent is published to the notifier worker after an order changes.
type OrderEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // Propagated for log correlation.
	Kind        OrderEventKind `json:"kind"`
	OrderID     string         `json:"order_id"`
	OrderNumber string         `json:"order_number"`
	UserID      string         `json:"user_id,omitempty"` // Empty for guest orders.
	OldStatus   OrderStatus    `json:"old_status,omitempty"`
	Status      OrderStatus    `json:"status"`
	Total       string         `json:"total"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// NewOrderEvent snapshots order for publishing.
func NewOrderEvent(kind OrderEventKind, order *Order, oldStatus OrderStatus, now time.Time) *OrderEvent {
	event := &OrderEvent{
		Kind:        kind,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		OldStatus:   oldStatus,
		Status:      order.Status,
		Total:       order.Total.String(),
		OccurredAt:  now,
	}
	if order.UserID != nil {
		event.UserID = order.UserID.String()
	}

	return event
}

// CustomerMessage is the push/in-app text the order owner receives, or false
// when the event is not customer-facing.
func (e *OrderEvent) CustomerMessage() (title, body string, ok bool) {
	switch e.Kind {
	case OrderEventPlaced:
		return "Order placed", "Your order #" + e.OrderNumber + " has been placed", true
	case OrderEventStatusChanged:
		if e.OldStatus == e.Status {
			return "", "", false
		}

		return "Order update", "Order #" + e.OrderNumber + " status updated to " + e.Status.String(), true
	default:
		return "", "", false
	}
}
