package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Helpers(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "storefront"
	m := New(cfg)

	m.CacheResult("catalog", true)
	m.CacheResult("catalog", false)
	m.CacheResult("catalog", false)
	m.OrderPlaced("checkout")
	m.FeedPublished("orders", "INSERT")
	m.SubscriberDelta(2)
	m.SubscriberDelta(-1)
	m.PushResult(3, 1)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("catalog", "hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("catalog", "miss")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("checkout")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FeedSubscribers), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.PushDeliveries.WithLabelValues("success")), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CacheResult("catalog", true)
		m.OrderPlaced("checkout")
		m.FeedPublished("orders", "UPDATE")
		m.SubscriberDelta(1)
		m.PushResult(1, 0)
		m.StorageOp("upload", nil)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New(nil)
	m.OrderPlaced("customization")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `storefront_orders_placed_total{kind="customization"} 1`)
}
