package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeatInterval = 15 * time.Second

type StreamHandlerParams struct {
	fx.In

	RealtimeUC usecase.RealtimeUsecase
	Logger     *slog.Logger
}

// StreamHandler serves realtime feeds as Server-Sent Events.
type StreamHandler struct {
	realtimeUC usecase.RealtimeUsecase
	logger     *slog.Logger
	heartbeat  time.Duration
}

func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		realtimeUC: params.RealtimeUC,
		logger:     params.Logger,
		heartbeat:  defaultHeartbeatInterval,
	}
}

type watchFunc func(ctx context.Context, viewer usecase.Actor) (<-chan usecase.StreamMessage, error)

// Orders streams every order to staff and the caller's own orders to shoppers.
func (h *StreamHandler) Orders(c echo.Context) error {
	return h.serve(c, h.realtimeUC.WatchOrders)
}

func (h *StreamHandler) Notifications(c echo.Context) error {
	return h.serve(c, h.realtimeUC.WatchNotifications)
}

func (h *StreamHandler) Customizations(c echo.Context) error {
	return h.serve(c, h.realtimeUC.WatchCustomizations)
}

func (h *StreamHandler) serve(c echo.Context, watch watchFunc) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	stream, err := watch(ctx, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	// The stream outlives the server's write timeout.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.log(ctx).Debug("Write deadline not adjustable", slog.Any("error", err))
	}
	w.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for seq := 1; ; {
		select {
		case <-ctx.Done():
			return nil
		case msg, open := <-stream:
			if !open {
				return nil
			}
			if err := writeEvent(w, seq, msg); err != nil {
				h.log(ctx).Debug("Stream client went away", slog.Any("error", err))

				return nil
			}
			seq++
		case <-ticker.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func (h *StreamHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// writeEvent frames msg as one SSE event named after its kind.
func writeEvent(w *echo.Response, seq int, msg usecase.StreamMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", seq, msg.Kind, data); err != nil {
		return errors.WithStack(err)
	}
	w.Flush()

	return nil
}
