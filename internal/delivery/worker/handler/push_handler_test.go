package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shippedEvent() *entity.OrderEvent {
	return &entity.OrderEvent{
		RequestID:   "req-from-api",
		Kind:        entity.OrderEventStatusChanged,
		OrderID:     "0b6c8f0e-7d5e-4f6a-9a57-0a4f0b3e2c11",
		OrderNumber: "ORD-1718000000000",
		UserID:      "6f1c2f0e-8f5a-4d55-9a57-0a4f0b3e2c11",
		OldStatus:   entity.OrderStatusPacked,
		Status:      entity.OrderStatusShipped,
		Total:       "1098",
		OccurredAt:  time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Subscription = "projects/local/subscriptions/order-events"
	msg.Message.MessageID = "1"
	msg.Message.Data = data
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *entity.OrderEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockOrderEventUsecase) {
	t.Helper()

	orderEventUC := mockUC.NewMockOrderEventUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = "test"

	return NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.DiscardHandler),
		OrderEventUC: orderEventUC,
	}), orderEventUC
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name     string
		useErr   error
		wantCode int
	}{
		{name: "processed", wantCode: http.StatusOK},
		{name: "transient failure is redelivered", useErr: errors.New("fcm unavailable"), wantCode: http.StatusServiceUnavailable},
		{name: "missing order is acknowledged", useErr: errors.WithStack(domainerrors.ErrOrderNotFound), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderEventUC := newTestPushHandler(t)
			event := shippedEvent()

			orderEventUC.EXPECT().
				HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *entity.OrderEvent) bool {
					return got.OrderNumber == event.OrderNumber && got.Status == entity.OrderStatusShipped
				})).
				Return(tt.useErr)

			c, rec := newPushContext(pushBody(t, encodeEvent(t, event), nil))
			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	bodies := map[string]string{
		"not json":         "{",
		"not base64":       pushBody(t, "%%%", nil),
		"not an event":     pushBody(t, base64.StdEncoding.EncodeToString([]byte(`[1,2]`)), nil),
		"missing order id": pushBody(t, encodeEvent(t, &entity.OrderEvent{Kind: entity.OrderEventPlaced}), nil),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			c, rec := newPushContext(body)
			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t)
	event := shippedEvent()

	var seen string
	orderEventUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.OrderEvent) {
			seen = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(nil)

	c, _ := newPushContext(pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-from-attr"}))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, "req-from-attr", seen)
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	c, rec := newPushContext(pushBody(t, encodeEvent(t, shippedEvent()), nil))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	cases := []struct {
		env, provider string
		want          bool
	}{
		{env: "production", provider: "google", want: true},
		{env: "develop", provider: "google"},
		{env: "production", provider: "local"},
	}

	for _, tc := range cases {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tc.provider}}
		cfg.Env.Env = tc.env
		h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
		assert.Equal(t, tc.want, h.verify != nil, tc.env+"/"+tc.provider)
	}

}
