package changefeed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderEvent(userID, status string) entity.ChangeEvent {
	return entity.ChangeEvent{
		Table:   entity.TableOrders,
		Type:    entity.ChangeUpdate,
		Columns: map[string]string{"user_id": userID, "status": status},
	}
}

func receive(t *testing.T, ch <-chan entity.ChangeEvent) entity.ChangeEvent {
	t.Helper()

	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")

		return entity.ChangeEvent{}
	}
}

func TestHub_FiltersAndPreservesOrder(t *testing.T) {
	hub := NewHub(8, discardLogger(), nil)
	ctx := context.Background()

	mine := hub.Subscribe(entity.ChangeFilter{Table: entity.TableOrders, AnyOf: []entity.ColumnEquals{{Column: "user_id", Value: "u-1"}}})
	defer mine.Unsubscribe()
	staff := hub.Subscribe(entity.ChangeFilter{Table: entity.TableOrders})
	defer staff.Unsubscribe()

	require.NoError(t, hub.Publish(ctx, orderEvent("u-1", "placed")))
	require.NoError(t, hub.Publish(ctx, orderEvent("u-2", "placed")))
	require.NoError(t, hub.Publish(ctx, orderEvent("u-1", "packed")))
	require.NoError(t, hub.Publish(ctx, entity.ChangeEvent{Table: entity.TableNotifications}))

	assert.Equal(t, "placed", receive(t, mine.Events()).Columns["status"])
	assert.Equal(t, "packed", receive(t, mine.Events()).Columns["status"])
	assert.Empty(t, mine.Events())

	assert.Equal(t, "u-1", receive(t, staff.Events()).Columns["user_id"])
	assert.Equal(t, "u-2", receive(t, staff.Events()).Columns["user_id"])
	assert.Equal(t, "u-1", receive(t, staff.Events()).Columns["user_id"])
	assert.Empty(t, staff.Events())
}

func TestHub_UnsubscribeReleasesAndCloses(t *testing.T) {
	hub := NewHub(1, discardLogger(), nil)
	sub := hub.Subscribe(entity.ChangeFilter{})
	assert.Equal(t, 1, hub.Len())

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 0, hub.Len())

	_, open := <-sub.Events()
	assert.False(t, open)

	require.NoError(t, hub.Publish(context.Background(), orderEvent("u-1", "placed")))
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub(1, discardLogger(), nil)
	sub := hub.Subscribe(entity.ChangeFilter{})
	defer sub.Unsubscribe()

	done := make(chan struct{})
	go func() {
		for range 10 {
			_ = hub.Publish(context.Background(), orderEvent("u-1", "placed"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Len(t, sub.Events(), 1)
}
