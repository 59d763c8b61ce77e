package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *entity.OrderEvent {
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), OrderNumber: "ORD-1", UserID: &userID, Status: entity.OrderStatusPlaced, Total: decimal.NewFromInt(1098)}
	event := entity.NewOrderEvent(entity.OrderEventPlaced, order, "", time.Now().UTC())
	event.RequestID = "req-1"

	return event
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := testEvent()
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.OrderID, received.Message.Attributes["order_id"])

	decoded, err := received.DecodeOrderEvent()
	require.NoError(t, err)
	assert.Equal(t, event.OrderNumber, decoded.OrderNumber)
	assert.Equal(t, entity.OrderEventPlaced, decoded.Kind)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
}

func TestPushMessage_DecodeOrderEventRejectsGarbage(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%"
	_, err := msg.DecodeOrderEvent()
	assert.Error(t, err)

	msg.Message.Data = "e30=" // {}
	_, err = msg.DecodeOrderEvent()
	assert.Error(t, err)
}
