package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCustomer() CustomerInfo {
	return CustomerInfo{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	assert.Equal(t, "ORD-1718000000123", NewOrderNumber(OrderNumberPrefix, now))
	assert.Equal(t, "CUST-1718000000123", NewOrderNumber(CustomizationNumberPrefix, now))
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("returned").IsValid())
	assert.True(t, OrderStatusPlaced.IsPending())
	assert.True(t, OrderStatusPacked.IsPending())
	assert.False(t, OrderStatusShipped.IsPending())
}

func TestCustomerInfo_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *CustomerInfo)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(*CustomerInfo) {}},
		{name: "missing name", mutate: func(c *CustomerInfo) { c.FullName = "" }, wantField: "full_name", wantMsg: "Full name is required"},
		{name: "long name", mutate: func(c *CustomerInfo) { c.FullName = strings.Repeat("a", 101) }, wantField: "full_name", wantMsg: "Full name must be less than 100 characters"},
		{name: "short phone", mutate: func(c *CustomerInfo) { c.Phone = "12345" }, wantField: "phone", wantMsg: "Enter valid 10-digit phone number"},
		{name: "phone with plus", mutate: func(c *CustomerInfo) { c.Phone = "+919876543210" }, wantField: "phone", wantMsg: "Enter valid 10-digit phone number"},
		{name: "missing phone", mutate: func(c *CustomerInfo) { c.Phone = "" }, wantField: "phone", wantMsg: "Phone number is required"},
		{name: "long address", mutate: func(c *CustomerInfo) { c.Address = strings.Repeat("x", 501) }, wantField: "address", wantMsg: "Address must be less than 500 characters"},
		{name: "missing city", mutate: func(c *CustomerInfo) { c.City = "" }, wantField: "city", wantMsg: "City is required"},
		{name: "missing state", mutate: func(c *CustomerInfo) { c.State = "" }, wantField: "state", wantMsg: "State is required"},
		{name: "pincode letters", mutate: func(c *CustomerInfo) { c.Pincode = "56A001" }, wantField: "pincode", wantMsg: "Enter valid 6-digit pincode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)

			problems := c.Validate()
			if tt.wantField == "" {
				assert.Empty(t, problems)

				return
			}
			assert.Equal(t, tt.wantMsg, problems[tt.wantField])
		})
	}
}

func TestCustomerInfo_NormalizeTrims(t *testing.T) {
	c := CustomerInfo{FullName: "  Asha ", Phone: " 9876543210\t", Pincode: " 560001 "}.Normalize()

	assert.Equal(t, "Asha", c.FullName)
	assert.Equal(t, "9876543210", c.Phone)
	assert.Equal(t, "560001", c.Pincode)
}

func TestOrder_Ownership(t *testing.T) {
	owner := uuid.New()
	order := &Order{UserID: &owner}

	assert.True(t, order.IsOwnedBy(owner))
	assert.False(t, order.IsOwnedBy(uuid.New()))
	assert.False(t, (&Order{}).IsOwnedBy(owner), "guest orders have no owner")
}
