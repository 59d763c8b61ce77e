package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomizationStatus tracks staff review of an embroidery request.
type CustomizationStatus string

const (
	CustomizationStatusPending  CustomizationStatus = "pending"
	CustomizationStatusReviewed CustomizationStatus = "reviewed"
	CustomizationStatusApproved CustomizationStatus = "approved"
	CustomizationStatusRejected CustomizationStatus = "rejected"
)

func (s CustomizationStatus) IsValid() bool {
	switch s {
	case CustomizationStatusPending, CustomizationStatusReviewed, CustomizationStatusApproved, CustomizationStatusRejected:
		return true
	default:
		return false
	}
}

// Placeholders used until staff confirm the delivery location by phone.
const (
	ToBeConfirmed             = "To be confirmed"
	DefaultCustomizationImage = "https://images.unsplash.com/photo-1521572163474-6814f0e4dbb9?w=400&h=400&fit=crop"
	PriceUpdateTitle          = "Price Update for Your Customization"
	defaultCustomizationLabel = "Custom Product"
)

// CustomizationContact is how staff reach the requester.
type CustomizationContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Street  string `json:"street"`
	Pincode string `json:"pincode"`
}

// DeliveryAddress joins address and street the way staff read it back.
func (c CustomizationContact) DeliveryAddress() string {
	return strings.TrimSpace(c.Address) + ", " + strings.TrimSpace(c.Street)
}

// CustomizationSubmission is a shopper's embroidery request.
type CustomizationSubmission struct {
	ProductID   string
	ProductName string
	Image       string
	Text        string
	Contact     CustomizationContact
}

// CustomizationRequest is the review record backing a CUST- order.
type CustomizationRequest struct {
	ID          uuid.UUID            `json:"id"`
	OrderID     uuid.UUID            `json:"order_id"`
	OrderNumber string               `json:"order_number"`
	UserID      *uuid.UUID           `json:"user_id"`
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	Image       string               `json:"image,omitempty"`
	Text        string               `json:"text"`
	Contact     CustomizationContact `json:"contact"`
	Status      CustomizationStatus  `json:"status"`
	AdminNotes  string               `json:"admin_notes"`
	QuotedPrice *decimal.Decimal     `json:"quoted_price"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// DisplayName is the product name shown in quotes and notifications.
func (r *CustomizationRequest) DisplayName() string {
	if strings.TrimSpace(r.ProductName) == "" {
		return defaultCustomizationLabel
	}

	return r.ProductName
}

// NewCustomizationOrder builds the zero-priced order that represents a submission.
func NewCustomizationOrder(sub CustomizationSubmission, userID *uuid.UUID, now time.Time) *Order {
	image := sub.Image
	if image == "" {
		image = DefaultCustomizationImage
	}

	return &Order{
		ID:          uuid.New(),
		OrderNumber: NewOrderNumber(CustomizationNumberPrefix, now),
		UserID:      userID,
		Items: []OrderItem{{
			ProductID:    sub.ProductID,
			ProductName:  sub.ProductName,
			ProductImage: image,
			Quantity:     1,
			Price:        decimal.Zero,
			Customization: &ItemCustomization{
				Image: sub.Image,
				Text:  sub.Text,
			},
		}},
		Total:  decimal.Zero,
		Status: OrderStatusPlaced,
		Customer: CustomerInfo{
			FullName: strings.TrimSpace(sub.Contact.Name),
			Phone:    strings.TrimSpace(sub.Contact.Phone),
			Address:  sub.Contact.DeliveryAddress(),
			City:     ToBeConfirmed,
			State:    ToBeConfirmed,
			Pincode:  strings.TrimSpace(sub.Contact.Pincode),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyQuote prices the customization line of o at price and recomputes the total.
// It returns the previous quoted price (zero when none) and false if o has no
// customization line.
func ApplyQuote(o *Order, price decimal.Decimal) (decimal.Decimal, bool) {
	idx, item := o.CustomizationItem()
	if item == nil {
		return decimal.Zero, false
	}

	old := decimal.Zero
	if item.Customization.QuotedPrice != nil {
		old = *item.Customization.QuotedPrice
	}

	quoted := price
	o.Items[idx].Customization.QuotedPrice = &quoted
	o.Items[idx].Price = price
	o.Total = o.ItemsTotal()

	return old, true
}
