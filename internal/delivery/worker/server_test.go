package worker

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWorkerRoutes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	logger := slog.New(slog.DiscardHandler)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:       cfg,
		Logger:       logger,
		OrderEventUC: mockUC.NewMockOrderEventUsecase(t),
	})
	e := newEcho(cfg, logger, push, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`{"message":{"data":"!!"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
