package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const visibleTokenSuffix = 6

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the push-enabled devices of the signed-in shopper.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

func (h *DeviceHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// DeviceView never echoes the full push token back to clients.
type DeviceView struct {
	ID          uuid.UUID             `json:"id"`
	DeviceID    string                `json:"device_id"`
	Platform    entity.DevicePlatform `json:"platform"`
	TokenSuffix string                `json:"token_suffix"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func newDeviceView(d *entity.UserDevice) DeviceView {
	suffix := d.FCMToken
	if len(suffix) > visibleTokenSuffix {
		suffix = suffix[len(suffix)-visibleTokenSuffix:]
	}

	return DeviceView{
		ID:          d.ID,
		DeviceID:    d.DeviceID,
		Platform:    d.Platform,
		TokenSuffix: suffix,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// RegisterDevice upserts by the client's device id.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	device, err := h.deviceUC.RegisterDevice(ctx, actor.UserID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: entity.DevicePlatform(req.Platform),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.log(ctx).Info("Push device registered",
		slog.String("deviceID", device.DeviceID),
		slog.String("platform", string(device.Platform)),
	)

	return response.Success(c, http.StatusCreated, newDeviceView(device))
}

func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]DeviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, newDeviceView(d))
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	deviceID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "device")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), actor.UserID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "FCM token updated successfully")
}

// DeactivateDevice stops pushes to the device; the row is kept.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	deviceID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "device")
	}

	ctx := c.Request().Context()
	if err := h.deviceUC.DeactivateDevice(ctx, actor.UserID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.log(ctx).Info("Push device deactivated", slog.String("id", deviceID.String()))

	return response.Message(c, "Device deactivated successfully")
}
