package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoute(t *testing.T) {
	m := metrics.New(&config.Config{})
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/v1/products/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/v1/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	for _, target := range []string{"/api/v1/products/1", "/api/v1/products/2", "/api/v1/broken", "/nowhere"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/products/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/broken", "418")), 0)
}
