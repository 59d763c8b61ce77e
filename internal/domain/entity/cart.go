package entity

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartProduct is the product snapshot kept on a cart line.
type CartProduct struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
	Stock int             `json:"stock"`
}

// CartProductFrom snapshots a catalog product for a cart line.
func CartProductFrom(p *Product) CartProduct {
	return CartProduct{
		ID:    p.ID.String(),
		Name:  p.Name,
		Price: p.Price,
		Image: p.PrimaryImage(),
		Stock: p.Stock,
	}
}

// CartItem is one cart line. Quantity is always >= 1.
type CartItem struct {
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// LineTotal is price x quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartOwner identifies whose cart it is: a signed-in user or a guest cart token.
type CartOwner struct {
	UserID     *uuid.UUID
	GuestToken string
}

// Key is the storage key for the owner's cart. Empty when the owner is unknown.
func (o CartOwner) Key() string {
	if o.UserID != nil {
		return "user:" + o.UserID.String()
	}
	if o.GuestToken != "" {
		return "guest:" + o.GuestToken
	}

	return ""
}

// Cart is an ordered list of lines, at most one per product.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.Product.ID == productID
	})
}

// Add merges qty units of product into the cart. An existing line keeps its
// position, gains the quantity and takes the fresher snapshot. qty < 1 is ignored.
func (c *Cart) Add(product CartProduct, qty int) {
	if qty < 1 {
		return
	}

	if idx := c.indexOf(product.ID); idx >= 0 {
		c.Items[idx].Product = product
		c.Items[idx].Quantity += qty

		return
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: qty})
}

// UpdateQuantity sets the quantity of a line; qty < 1 removes it.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)

		return
	}

	if idx := c.indexOf(productID); idx >= 0 {
		c.Items[idx].Quantity = qty
	}
}

// Remove drops the line for productID, if any.
func (c *Cart) Remove(productID string) {
	c.Items = slices.DeleteFunc(c.Items, func(item CartItem) bool {
		return item.Product.ID == productID
	})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Quantity returns the quantity held for productID, 0 if absent.
func (c *Cart) Quantity(productID string) int {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Items[idx].Quantity
	}

	return 0
}

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// DeliveryPolicy is the flat-rate delivery fee, waived at or above FreeThreshold.
type DeliveryPolicy struct {
	FreeThreshold decimal.Decimal
	Fee           decimal.Decimal
}

// Charge returns the delivery fee owed for subtotal.
func (p DeliveryPolicy) Charge(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}

	return p.Fee
}

// CartTotals is the checkout summary of a cart.
type CartTotals struct {
	TotalItems           int             `json:"total_items"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	DeliveryCharge       decimal.Decimal `json:"delivery_charge"`
	GrandTotal           decimal.Decimal `json:"grand_total"`
	FreeDelivery         bool            `json:"free_delivery"`
	AmountToFreeDelivery decimal.Decimal `json:"amount_to_free_delivery"`
}

// Totals prices the cart under policy.
func (c *Cart) Totals(policy DeliveryPolicy) CartTotals {
	subtotal := c.Subtotal()
	charge := policy.Charge(subtotal)

	remaining := policy.FreeThreshold.Sub(subtotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return CartTotals{
		TotalItems:           c.TotalItems(),
		Subtotal:             subtotal,
		DeliveryCharge:       charge,
		GrandTotal:           subtotal.Add(charge),
		FreeDelivery:         charge.IsZero(),
		AmountToFreeDelivery: remaining,
	}
}

// EncodeCart serializes the cart lines as a JSON array.
func EncodeCart(c *Cart) ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}

	return json.Marshal(items)
}

// DecodeCart parses data written by EncodeCart, or by any older client.
// Entries that are not objects, whose product.id is not a string, or whose
// quantity is not a number >= 1 are dropped. Data that is not a JSON array
// decodes to an empty cart.
func DecodeCart(data []byte) *Cart {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &Cart{}
	}

	cart := &Cart{Items: make([]CartItem, 0, len(raw))}
	for _, entry := range raw {
		item, ok := decodeCartItem(entry)
		if !ok {
			continue
		}
		cart.Items = append(cart.Items, item)
	}

	return cart
}

func decodeCartItem(entry json.RawMessage) (CartItem, bool) {
	var shape struct {
		Product  map[string]json.RawMessage `json:"product"`
		Quantity json.RawMessage            `json:"quantity"`
	}
	if err := json.Unmarshal(entry, &shape); err != nil || shape.Product == nil {
		return CartItem{}, false
	}

	var id *string
	if err := json.Unmarshal(shape.Product["id"], &id); err != nil || id == nil {
		return CartItem{}, false
	}

	var qty float64
	if err := json.Unmarshal(shape.Quantity, &qty); err != nil || qty < 1 {
		return CartItem{}, false
	}

	product := CartProduct{ID: *id}
	// Optional fields are best effort; a bad value leaves the zero value.
	_ = json.Unmarshal(shape.Product["name"], &product.Name)
	_ = json.Unmarshal(shape.Product["image"], &product.Image)
	_ = json.Unmarshal(shape.Product["stock"], &product.Stock)
	if price, ok := shape.Product["price"]; ok {
		_ = product.Price.UnmarshalJSON(price)
	}

	return CartItem{Product: product, Quantity: int(qty)}, true
}
