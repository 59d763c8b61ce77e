package handler

import (
	"io"
	"log/slog"
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

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{
		DeviceUC: deviceUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), deviceUC
}

func TestDeviceHandler_RegisterDevice_MasksToken(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, testUserID, &usecase.DeviceInfo{FCMToken: "fcm-token-abcdef123456", DeviceID: "pixel-8", Platform: entity.DevicePlatformAndroid}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: testUserID, FCMToken: "fcm-token-abcdef123456", DeviceID: "pixel-8", Platform: entity.DevicePlatformAndroid, IsActive: true}, nil)

	c, rec := newTestContext(testRequest{
		method:    http.MethodPost,
		target:    "/api/v1/devices",
		body:      `{"fcm_token":"fcm-token-abcdef123456","device_id":"pixel-8","platform":"android"}`,
		principal: shopper(),
	})
	require.NoError(t, h.RegisterDevice(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "fcm-token-abcdef")

	var got DeviceView
	decodeData(t, rec, &got)
	assert.Equal(t, "123456", got.TokenSuffix)
	assert.Equal(t, "pixel-8", got.DeviceID)
	assert.True(t, got.IsActive)
}

func TestDeviceHandler_RegisterDevice_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		req      testRequest
		wantCode int
		wantErr  string
	}{
		{
			name:     "anonymous",
			req:      testRequest{method: http.MethodPost, target: "/", body: `{}`},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:     "unsupported platform",
			req:      testRequest{method: http.MethodPost, target: "/", body: `{"fcm_token":"t","device_id":"d","platform":"symbian"}`, principal: shopper()},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "missing token",
			req:      testRequest{method: http.MethodPost, target: "/", body: `{"device_id":"d","platform":"ios"}`, principal: shopper()},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestDeviceHandler(t)

			c, rec := newTestContext(tt.req)
			require.NoError(t, h.RegisterDevice(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
		})
	}
}

func TestDeviceHandler_GetUserDevices(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	deviceUC.EXPECT().GetUserDevices(mock.Anything, testUserID).Return([]*entity.UserDevice{
		{ID: uuid.New(), FCMToken: "abc", DeviceID: "ipad", Platform: entity.DevicePlatformIOS},
	}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/devices", principal: shopper()})
	require.NoError(t, h.GetUserDevices(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []DeviceView
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0].TokenSuffix)
	assert.False(t, got[0].IsActive)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	deviceID := uuid.New()

	t.Run("someone else's device", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceUC.EXPECT().DeactivateDevice(mock.Anything, testUserID, deviceID).Return(domainerrors.ErrDeviceNotFound)

		c, rec := newTestContext(testRequest{method: http.MethodDelete, target: "/", principal: shopper(),
			params: map[string]string{"id": deviceID.String()}})
		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DEVICE_NOT_FOUND", decodeError(t, rec).Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)

		c, rec := newTestContext(testRequest{method: http.MethodDelete, target: "/", principal: shopper(),
			params: map[string]string{"id": "nope"}})
		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("deactivated", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceUC.EXPECT().DeactivateDevice(mock.Anything, testUserID, deviceID).Return(nil)

		c, rec := newTestContext(testRequest{method: http.MethodDelete, target: "/", principal: shopper(),
			params: map[string]string{"id": deviceID.String()}})
		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
