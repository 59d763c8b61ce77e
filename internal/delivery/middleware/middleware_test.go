package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsValidInboundID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	err := mw.Process(func(c echo.Context) error {
		assert.Equal(t, "abc-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesHostileID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\nwith newline")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, " ")
	assert.Empty(t, sanitizeRequestID(strings.Repeat("a", maxInboundRequestIDLength+1)))
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}

	mw := NewLoggerMiddleware(logger, cfg)
	e := echo.New()

	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
	assert.Empty(t, buf.String())

	failed := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "down") })(failed)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=502")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
