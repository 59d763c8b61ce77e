package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the in-app inbox and admin broadcasts.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// SendNotificationRequest broadcasts when UserID is empty.
type SendNotificationRequest struct {
	UserID  string `json:"user_id" validate:"omitempty,uuid"`
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Type    string `json:"type"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), actor.UserID, intQuery(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "notification")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), actor.UserID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), actor.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "All notifications marked as read")
}

func (h *NotificationHandler) Send(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.SendNotificationInput{
		Title:   req.Title,
		Message: req.Message,
		Type:    entity.NotificationType(req.Type),
	}
	if input.Type == "" {
		input.Type = entity.NotificationTypeInfo
	}
	if req.UserID != "" {
		id := uuid.MustParse(req.UserID)
		input.UserID = &id
	}

	notification, err := h.notificationUC.Send(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "notification")
	}

	if err := h.notificationUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Notification deleted")
}
