package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Tables that publish change events.
const (
	TableOrders                = "orders"
	TableCustomizationRequests = "customization_requests"
	TableNotifications         = "notifications"
	TableProducts              = "products"
)

// ChangeType is the kind of row mutation.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// ChangeEvent describes one row mutation. Columns holds the values that
// subscribers may filter on (user_id, status, ...); Old holds the same
// columns before an update.
type ChangeEvent struct {
	ID         uuid.UUID         `json:"id"`
	Table      string            `json:"table"`
	Type       ChangeType        `json:"type"`
	RecordID   string            `json:"record_id"`
	Columns    map[string]string `json:"columns,omitempty"`
	Old        map[string]string `json:"old,omitempty"`
	Record     json.RawMessage   `json:"record,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// ColumnEquals is an equality predicate on a change-event column.
type ColumnEquals struct {
	Column string
	Value  string
}

// ChangeFilter selects events for one subscriber.
type ChangeFilter struct {
	Table string
	// AnyOf lists alternative predicates; an event passes if one holds.
	// An empty list passes every event on Table.
	AnyOf []ColumnEquals
}

// Matches reports whether e passes the filter.
func (f ChangeFilter) Matches(e ChangeEvent) bool {
	if f.Table != "" && f.Table != e.Table {
		return false
	}
	if len(f.AnyOf) == 0 {
		return true
	}

	for _, p := range f.AnyOf {
		if v, ok := e.Columns[p.Column]; ok && v == p.Value {
			return true
		}
	}

	return false
}

// NewOrderChangeEvent builds the event for an order insert or update. prev is
// nil for inserts.
func NewOrderChangeEvent(changeType ChangeType, order *Order, prev *Order, now time.Time) (ChangeEvent, error) {
	record, err := json.Marshal(order)
	if err != nil {
		return ChangeEvent{}, err
	}

	event := ChangeEvent{
		ID:         uuid.New(),
		Table:      TableOrders,
		Type:       changeType,
		RecordID:   order.ID.String(),
		Columns:    orderColumns(order),
		Record:     record,
		OccurredAt: now,
	}
	if prev != nil {
		event.Old = orderColumns(prev)
	}

	return event, nil
}

func orderColumns(o *Order) map[string]string {
	cols := map[string]string{
		"id":           o.ID.String(),
		"order_number": o.OrderNumber,
		"status":       o.Status.String(),
		"total":        o.Total.String(),
	}
	if o.UserID != nil {
		cols["user_id"] = o.UserID.String()
	}

	return cols
}

// DescribeOrderChange renders the staff-facing toast for an order event.
// It returns false for events that do not warrant one.
func DescribeOrderChange(e ChangeEvent) (string, bool) {
	if e.Table != TableOrders {
		return "", false
	}

	number := e.Columns["order_number"]
	switch e.Type {
	case ChangeInsert:
		return "New order #" + number + " received!", true
	case ChangeUpdate:
		newStatus := e.Columns["status"]
		if e.Old != nil && e.Old["status"] == newStatus {
			return "", false
		}

		return "Order #" + number + " status updated to " + newStatus, true
	default:
		return "", false
	}
}

// NewRecordChangeEvent builds a generic change event for tables other than orders.
func NewRecordChangeEvent(table string, changeType ChangeType, recordID string, columns map[string]string, record any, now time.Time) (ChangeEvent, error) {
	var raw json.RawMessage
	if record != nil {
		b, err := json.Marshal(record)
		if err != nil {
			return ChangeEvent{}, err
		}
		raw = b
	}

	return ChangeEvent{
		ID:         uuid.New(),
		Table:      table,
		Type:       changeType,
		RecordID:   recordID,
		Columns:    columns,
		Record:     raw,
		OccurredAt: now,
	}, nil
}
