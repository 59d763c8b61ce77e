package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price string) CartProduct {
	return CartProduct{ID: id, Name: "Product " + id, Price: decimal.RequireFromString(price), Stock: 50}
}

func testPolicy() DeliveryPolicy {
	return DeliveryPolicy{FreeThreshold: decimal.NewFromInt(999), Fee: decimal.NewFromInt(99)}
}

func TestCart_AddMergesQuantities(t *testing.T) {
	cart := &Cart{}
	cart.Add(testProduct("a", "100"), 1)
	cart.Add(testProduct("b", "50"), 2)
	cart.Add(testProduct("a", "120"), 3)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "a", cart.Items[0].Product.ID)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(120).Equal(cart.Items[0].Product.Price), "fresher snapshot wins")
	assert.Equal(t, 6, cart.TotalItems())
}

func TestCart_AddIgnoresNonPositiveQuantity(t *testing.T) {
	cart := &Cart{}
	cart.Add(testProduct("a", "100"), 0)
	cart.Add(testProduct("a", "100"), -2)

	assert.True(t, cart.IsEmpty())
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := &Cart{}
	cart.Add(testProduct("a", "100"), 1)
	cart.Add(testProduct("b", "100"), 1)

	cart.UpdateQuantity("a", 5)
	assert.Equal(t, 5, cart.Quantity("a"))

	cart.UpdateQuantity("a", 0)
	assert.Equal(t, 0, cart.Quantity("a"))
	require.Len(t, cart.Items, 1)

	cart.UpdateQuantity("missing", 3)
	require.Len(t, cart.Items, 1)
}

func TestCart_Totals(t *testing.T) {
	tests := []struct {
		name         string
		lines        map[string]int
		wantSubtotal string
		wantCharge   string
		wantGrand    string
		wantFree     bool
	}{
		{
			name:         "below threshold pays fee",
			lines:        map[string]int{"499.50": 1},
			wantSubtotal: "499.5",
			wantCharge:   "99",
			wantGrand:    "598.5",
		},
		{
			name:         "exactly at threshold is free",
			lines:        map[string]int{"333": 3},
			wantSubtotal: "999",
			wantCharge:   "0",
			wantGrand:    "999",
			wantFree:     true,
		},
		{
			name:         "just below threshold",
			lines:        map[string]int{"998.99": 1},
			wantSubtotal: "998.99",
			wantCharge:   "99",
			wantGrand:    "1097.99",
		},
		{
			name:         "above threshold",
			lines:        map[string]int{"700": 1, "150": 2},
			wantSubtotal: "1000",
			wantCharge:   "0",
			wantGrand:    "1000",
			wantFree:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			for price, qty := range tt.lines {
				cart.Add(testProduct(price, price), qty)
			}

			totals := cart.Totals(testPolicy())

			assert.True(t, decimal.RequireFromString(tt.wantSubtotal).Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.wantCharge).Equal(totals.DeliveryCharge), "charge %s", totals.DeliveryCharge)
			assert.True(t, decimal.RequireFromString(tt.wantGrand).Equal(totals.GrandTotal), "grand %s", totals.GrandTotal)
			assert.Equal(t, tt.wantFree, totals.FreeDelivery)
			assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.DeliveryCharge)))
		})
	}
}

func TestCart_SubtotalIsSumOfLineTotals(t *testing.T) {
	cart := &Cart{}
	cart.Add(testProduct("a", "19.99"), 3)
	cart.Add(testProduct("b", "0.01"), 7)

	assert.True(t, decimal.RequireFromString("60.04").Equal(cart.Subtotal()))
}

func TestCart_TotalsAmountToFreeDelivery(t *testing.T) {
	cart := &Cart{}
	cart.Add(testProduct("a", "899"), 1)

	totals := cart.Totals(testPolicy())
	assert.True(t, decimal.NewFromInt(100).Equal(totals.AmountToFreeDelivery))

	cart.Add(testProduct("a", "899"), 1)
	totals = cart.Totals(testPolicy())
	assert.True(t, totals.AmountToFreeDelivery.IsZero())
}

func TestCartCodec_RoundTrip(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartProduct{ID: "p-1", Name: "Mug", Price: decimal.RequireFromString("249.50"), Image: "https://img/1", Stock: 4}, 2)
	cart.Add(CartProduct{ID: "p-2", Name: "Tee", Price: decimal.NewFromInt(799), Stock: 10}, 1)

	encoded, err := EncodeCart(cart)
	require.NoError(t, err)

	decoded := DecodeCart(encoded)
	require.Len(t, decoded.Items, 2)

	reencoded, err := EncodeCart(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(reencoded))
	assert.Equal(t, cart.TotalItems(), decoded.TotalItems())
	assert.True(t, cart.Subtotal().Equal(decoded.Subtotal()))
}

func TestCartCodec_EmptyCartEncodesAsArray(t *testing.T) {
	encoded, err := EncodeCart(&Cart{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))
}

func TestDecodeCart_FiltersMalformedEntries(t *testing.T) {
	data := `[
		{"product": {"id": "ok", "name": "Fine", "price": 10}, "quantity": 2},
		{"product": {"id": 42}, "quantity": 1},
		{"product": {"id": null, "price": 10}, "quantity": 2},
		{"product": {"name": "no id"}, "quantity": 1},
		{"product": "not-an-object", "quantity": 1},
		{"product": {"id": "bad-qty"}, "quantity": "3"},
		{"product": {"id": "zero-qty"}, "quantity": 0},
		{"quantity": 1},
		"garbage",
		null,
		{"product": {"id": "also-ok", "price": "5.5"}, "quantity": 1}
	]`

	cart := DecodeCart([]byte(data))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "ok", cart.Items[0].Product.ID)
	assert.Equal(t, "Fine", cart.Items[0].Product.Name)
	assert.True(t, decimal.NewFromInt(10).Equal(cart.Items[0].Product.Price))
	assert.Equal(t, "also-ok", cart.Items[1].Product.ID)
	assert.True(t, decimal.RequireFromString("5.5").Equal(cart.Items[1].Product.Price))
}

func TestDecodeCart_UnparseableDataYieldsEmptyCart(t *testing.T) {
	for _, data := range []string{"", "{", `{"items": []}`, "42", "null"} {
		t.Run(data, func(t *testing.T) {
			assert.True(t, DecodeCart([]byte(data)).IsEmpty())
		})
	}
}

func TestCartOwner_Key(t *testing.T) {
	assert.Equal(t, "guest:abc", CartOwner{GuestToken: "abc"}.Key())
	assert.Equal(t, "", CartOwner{}.Key())
}
