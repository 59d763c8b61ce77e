package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in fulfilment order.
var OrderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPacked,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPacked, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsPending reports whether the order still needs work from the shop.
func (s OrderStatus) IsPending() bool {
	return s == OrderStatusPlaced || s == OrderStatusPacked
}

// Order number prefixes.
const (
	OrderNumberPrefix         = "ORD-"
	CustomizationNumberPrefix = "CUST-"
)

// NewOrderNumber builds "<prefix><unix millis>".
func NewOrderNumber(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// ItemCustomization is the embroidery request attached to an order line.
type ItemCustomization struct {
	Image       string           `json:"image,omitempty"`
	Text        string           `json:"text"`
	QuotedPrice *decimal.Decimal `json:"quoted_price"` // Nil until staff quote a price.
}

// OrderItem is a priced snapshot of a product at the time of ordering.
type OrderItem struct {
	ProductID     string             `json:"product_id"`
	ProductName   string             `json:"product_name"`
	ProductImage  string             `json:"product_image"`
	Quantity      int                `json:"quantity"`
	Price         decimal.Decimal    `json:"price"`
	Customization *ItemCustomization `json:"customization,omitempty"`
}

// LineTotal is price x quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerInfo is the delivery contact captured at checkout.
type CustomerInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// Normalize trims surrounding whitespace from every field.
func (c CustomerInfo) Normalize() CustomerInfo {
	return CustomerInfo{
		FullName: strings.TrimSpace(c.FullName),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  strings.TrimSpace(c.Address),
		City:     strings.TrimSpace(c.City),
		State:    strings.TrimSpace(c.State),
		Pincode:  strings.TrimSpace(c.Pincode),
	}
}

// Validate checks a normalized CustomerInfo and returns field -> message for
// every problem found. An empty map means the info is acceptable.
func (c CustomerInfo) Validate() map[string]string {
	problems := make(map[string]string)

	requireText(problems, "full_name", "Full name", c.FullName, 100)
	requireText(problems, "address", "Address", c.Address, 500)
	requireText(problems, "city", "City", c.City, 100)
	requireText(problems, "state", "State", c.State, 100)

	switch {
	case c.Phone == "":
		problems["phone"] = "Phone number is required"
	case !phonePattern.MatchString(c.Phone):
		problems["phone"] = "Enter valid 10-digit phone number"
	}

	switch {
	case c.Pincode == "":
		problems["pincode"] = "Pincode is required"
	case !pincodePattern.MatchString(c.Pincode):
		problems["pincode"] = "Enter valid 6-digit pincode"
	}

	return problems
}

func requireText(problems map[string]string, field, label, value string, maxLen int) {
	switch {
	case value == "":
		problems[field] = label + " is required"
	case utf8.RuneCountInString(value) > maxLen:
		problems[field] = label + " must be less than " + strconv.Itoa(maxLen) + " characters"
	}
}

// Order is a placed order. UserID is nil for guest checkouts.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	UserID      *uuid.UUID      `json:"user_id"`
	Items       []OrderItem     `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
	Customer    CustomerInfo    `json:"customer"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsCustomization reports whether the order came from the customization flow.
func (o *Order) IsCustomization() bool {
	return strings.HasPrefix(o.OrderNumber, CustomizationNumberPrefix)
}

// CustomizationItem returns the first line carrying a customization, if any.
func (o *Order) CustomizationItem() (int, *OrderItem) {
	for i := range o.Items {
		if o.Items[i].Customization != nil {
			return i, &o.Items[i]
		}
	}

	return -1, nil
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID != nil && *o.UserID == userID
}

// ItemsTotal recomputes the sum of line totals.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// CheckoutLine is a requested product and quantity at checkout.
type CheckoutLine struct {
	ProductID uuid.UUID
	Quantity  int
}
