package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStreamHandler(t *testing.T) (*StreamHandler, *mockUC.MockRealtimeUsecase) {
	t.Helper()

	realtimeUC := mockUC.NewMockRealtimeUsecase(t)
	h := NewStreamHandler(StreamHandlerParams{
		RealtimeUC: realtimeUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, realtimeUC
}

func TestStreamHandler_WritesEventsUntilClosed(t *testing.T) {
	h, realtimeUC := newTestStreamHandler(t)

	stream := make(chan usecase.StreamMessage, 2)
	stream <- usecase.StreamMessage{
		Kind:    usecase.StreamChange,
		Change:  &entity.ChangeEvent{Table: "orders", Type: entity.ChangeInsert, RecordID: "42"},
		Message: "New order ORD-42",
	}
	stream <- usecase.StreamMessage{Kind: usecase.StreamSnapshot, Snapshot: []string{}}
	close(stream)

	realtimeUC.EXPECT().
		WatchOrders(mock.Anything, usecase.Actor{UserID: testUserID, Role: entity.RoleModerator}).
		Return(stream, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/", principal: staff(entity.RoleModerator)})
	require.NoError(t, h.Orders(c))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "id: 1\nevent: change\ndata: ")
	assert.Contains(t, body, "New order ORD-42")
	assert.Contains(t, body, "id: 2\nevent: snapshot\n")
}

func TestStreamHandler_Heartbeat(t *testing.T) {
	h, realtimeUC := newTestStreamHandler(t)
	h.heartbeat = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	realtimeUC.EXPECT().
		WatchNotifications(mock.Anything, mock.Anything).
		Return(make(chan usecase.StreamMessage), nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/", principal: shopper()})
	c.SetRequest(c.Request().WithContext(ctx))

	require.NoError(t, h.Notifications(c))
	assert.True(t, strings.Contains(rec.Body.String(), ": ping\n\n"))
}

func TestStreamHandler_Rejections(t *testing.T) {
	h, realtimeUC := newTestStreamHandler(t)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/"})
	require.NoError(t, h.Customizations(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	realtimeUC.EXPECT().WatchCustomizations(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrForbidden)
	c, rec = newTestContext(testRequest{method: http.MethodGet, target: "/", principal: shopper()})
	require.NoError(t, h.Customizations(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
