package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newTestLogger()})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: entity.DevicePlatformIOS,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: entity.DevicePlatformIOS,
		IsActive: false,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateDevice(ctx, existingDevice).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: entity.DevicePlatformAndroid,
	})
	require.NoError(t, err)
	assert.Equal(t, existingDevice.ID, device.ID)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.Equal(t, entity.DevicePlatformAndroid, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{name: "missing token", info: &usecase.DeviceInfo{DeviceID: "d", Platform: entity.DevicePlatformWeb}},
		{name: "missing device id", info: &usecase.DeviceInfo{FCMToken: "t", Platform: entity.DevicePlatformWeb}},
		{name: "unknown platform", info: &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "windows"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		userID := uuid.New()
		device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "old"}

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		fx.deviceRepo.EXPECT().
			UpdateDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool { return d.FCMToken == "fresh" && d.IsActive })).
			Return(nil)

		assert.NoError(t, fx.service.UpdateFCMToken(ctx, userID, device.ID, " fresh "))
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		device := &entity.UserDevice{ID: uuid.New(), UserID: uuid.New()}

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

		err := fx.service.UpdateFCMToken(ctx, uuid.New(), device.ID, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		deviceID := uuid.New()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "fresh")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetUserDevices_OnlyActive(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: false},
	}, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, IsActive: true}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, device.ID).Return(nil)

	assert.NoError(t, fx.service.DeactivateDevice(ctx, userID, device.ID))
}
