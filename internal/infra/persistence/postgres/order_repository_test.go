package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "buyer@example.com")
	now := time.Now().UTC()

	older := seedOrder(t, db, &user.ID, "ORD-1", now.Add(-time.Hour))
	newer := seedOrder(t, db, &user.ID, "ORD-2", now)
	seedOrder(t, db, nil, "ORD-3", now.Add(-2*time.Hour))

	got, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", got.OrderNumber)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(500).Equal(got.Items[0].Price))
	assert.Equal(t, "411001", got.Customer.Pincode)

	mine, err := repo.List(ctx, repository.OrderFilter{UserID: &user.ID})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)

	all, err := repo.List(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	order := seedOrder(t, db, nil, "ORD-9", time.Now())

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped))
	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)

	// Any valid status may follow any other.
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPlaced))

	assert.Error(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatus("lost")))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entity.OrderStatusPacked), repository.ErrOrderNotFound)

	filtered, err := repo.List(ctx, repository.OrderFilter{Status: entity.OrderStatusPlaced})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestOrderRepository_UpdatePricing(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "custom@example.com")

	order := entity.NewCustomizationOrder(entity.CustomizationSubmission{
		ProductID:   uuid.NewString(),
		ProductName: "Denim Jacket",
		Text:        "Initials AB",
		Contact:     entity.CustomizationContact{Name: "Ab", Phone: "9876543210", Address: "1 Lane", Street: "Main", Pincode: "560001"},
	}, &user.ID, time.Now())
	require.NoError(t, repo.Create(ctx, order))

	_, ok := entity.ApplyQuote(order, decimal.NewFromInt(1500))
	require.True(t, ok)
	require.NoError(t, repo.UpdatePricing(ctx, order))

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(got.Total))
	_, item := got.CustomizationItem()
	require.NotNil(t, item)
	require.NotNil(t, item.Customization.QuotedPrice)
	assert.True(t, decimal.NewFromInt(1500).Equal(*item.Customization.QuotedPrice))
	assert.Equal(t, entity.ToBeConfirmed, got.Customer.City)
}

func TestCustomizationRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomizationRepository(db)
	ctx := context.Background()
	order := seedOrder(t, db, nil, "CUST-1", time.Now())

	req := &entity.CustomizationRequest{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ProductID:   "p-1",
		ProductName: "Cap",
		Text:        "Team logo",
		Contact:     entity.CustomizationContact{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210"},
		Status:      entity.CustomizationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, req))

	price := decimal.NewFromInt(650)
	req.Status = entity.CustomizationStatusApproved
	req.AdminNotes = "Two colours"
	req.QuotedPrice = &price
	require.NoError(t, repo.Update(ctx, req))

	got, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomizationStatusApproved, got.Status)
	assert.Equal(t, "ravi@example.com", got.Contact.Email)
	require.NotNil(t, got.QuotedPrice)
	assert.True(t, price.Equal(*got.QuotedPrice))

	pending, err := repo.List(ctx, repository.CustomizationFilter{Status: entity.CustomizationStatusPending})
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, repo.Delete(ctx, req.ID))
	_, err = repo.FindByID(ctx, req.ID)
	assert.ErrorIs(t, err, repository.ErrCustomizationNotFound)
}
