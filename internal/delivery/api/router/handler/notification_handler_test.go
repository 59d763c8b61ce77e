package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_Send(t *testing.T) {
	recipient := uuid.New()

	tests := []struct {
		name     string
		body     string
		expected *usecase.SendNotificationInput
		wantCode int
	}{
		{
			name:     "broadcast defaults to info",
			body:     `{"title":"Diwali sale","message":"20% off all sarees"}`,
			expected: &usecase.SendNotificationInput{Title: "Diwali sale", Message: "20% off all sarees", Type: entity.NotificationTypeInfo},
			wantCode: http.StatusCreated,
		},
		{
			name: "targeted",
			body: `{"user_id":"` + recipient.String() + `","title":"Shipped","message":"On its way","type":"success"}`,
			expected: &usecase.SendNotificationInput{
				UserID: &recipient, Title: "Shipped", Message: "On its way", Type: entity.NotificationTypeSuccess,
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing title",
			body:     `{"message":"no title"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad recipient",
			body:     `{"user_id":"someone","title":"t","message":"m"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notificationUC := mockUC.NewMockNotificationUsecase(t)
			h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
			if tt.expected != nil {
				notificationUC.EXPECT().Send(mock.Anything, tt.expected).Return(&entity.Notification{}, nil)
			}

			c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: tt.body, principal: staff(entity.RoleAdmin)})
			require.NoError(t, h.Send(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestNotificationHandler_Inbox(t *testing.T) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	id := uuid.New()

	notificationUC.EXPECT().UnreadCount(mock.Anything, testUserID).Return(int64(3), nil)
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/", principal: shopper()})
	require.NoError(t, h.UnreadCount(c))

	var count map[string]int64
	decodeData(t, rec, &count)
	assert.Equal(t, int64(3), count["count"])

	notificationUC.EXPECT().List(mock.Anything, testUserID, 10).Return([]*entity.Notification{}, nil)
	c, rec = newTestContext(testRequest{method: http.MethodGet, target: "/?limit=10", principal: shopper()})
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	notificationUC.EXPECT().MarkRead(mock.Anything, testUserID, id).Return(domainerrors.ErrNotificationNotFound)
	c, rec = newTestContext(testRequest{method: http.MethodPatch, target: "/", principal: shopper(), params: map[string]string{"id": id.String()}})
	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newTestContext(testRequest{method: http.MethodGet, target: "/"})
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
