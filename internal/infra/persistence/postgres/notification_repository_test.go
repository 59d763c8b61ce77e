package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_GlobalReadStateIsPerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	now := time.Now().UTC()

	global := &entity.Notification{Title: "Sale", Message: "20% off", Type: entity.NotificationTypeInfo, IsGlobal: true, CreatedAt: now}
	personal := &entity.Notification{UserID: &alice.ID, Title: "Shipped", Message: "On its way", Type: entity.NotificationTypeSuccess, CreatedAt: now.Add(time.Second)}
	require.NoError(t, repo.Create(ctx, global))
	require.NoError(t, repo.Create(ctx, personal))

	count, err := repo.CountUnread(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkRead(ctx, global.ID, alice.ID))
	require.NoError(t, repo.MarkRead(ctx, global.ID, alice.ID), "marking twice is harmless")

	count, err = repo.CountUnread(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountUnread(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "alice reading a global notification does not affect bob")

	assert.ErrorIs(t, repo.MarkRead(ctx, personal.ID, bob.ID), repository.ErrNotificationNotFound)

	list, err := repo.ListForUser(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, personal.ID, list[0].ID)
	assert.False(t, list[0].Read)
	assert.True(t, list[1].Read)

	bobList, err := repo.ListForUser(ctx, bob.ID, 0)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	assert.False(t, bobList[0].Read)
}

func TestNotificationRepository_MarkAllReadAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader@example.com")

	for i := range 3 {
		n := &entity.Notification{UserID: &user.ID, Title: "n", Message: "m", Type: entity.NotificationTypeInfo, CreatedAt: time.Now().Add(time.Duration(i) * time.Second)}
		require.NoError(t, repo.Create(ctx, n))
	}
	global := &entity.Notification{Title: "g", Message: "m", Type: entity.NotificationTypeWarning, IsGlobal: true}
	require.NoError(t, repo.Create(ctx, global))

	require.NoError(t, repo.MarkAllRead(ctx, user.ID))
	count, err := repo.CountUnread(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Delete(ctx, global.ID))
	assert.ErrorIs(t, repo.Delete(ctx, global.ID), repository.ErrNotificationNotFound)
	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_PriceUpdateMetadata(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "quote@example.com")
	order := seedOrder(t, db, &user.ID, "CUST-5", time.Now())

	n := entity.NewPriceUpdateNotification(user.ID, order, "Cap", order.Total, order.Total.Add(order.Total), time.Now())
	require.NoError(t, repo.Create(ctx, n))

	got, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Metadata)
	assert.Equal(t, "CUST-5", got.Metadata.OrderNumber)
	require.NotNil(t, got.Metadata.NewPrice)
	assert.Equal(t, "2000", got.Metadata.NewPrice.String())
}
