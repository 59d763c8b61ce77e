// Package metrics owns the Prometheus registry and the collectors the service reports to.
package metrics

import (
	"database/sql"
	"net/http"

	"storefront/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	OrdersPlaced    *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
	FeedEvents      *prometheus.CounterVec
	FeedSubscribers prometheus.Gauge
	PushDeliveries  *prometheus.CounterVec
	Uploads         *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed, split by regular checkout and customization.",
		}, []string{"kind"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Cache lookups by cache name and result.",
		}, []string{"cache", "result"}),
		FeedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "changefeed",
			Name:      "events_total",
			Help:      "Change events published by table and change type.",
		}, []string{"table", "type"}),
		FeedSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "changefeed",
			Name:      "subscribers",
			Help:      "Live change feed subscriptions.",
		}),
		PushDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "deliveries_total",
			Help:      "Push notifications by outcome.",
		}, []string{"result"}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Object storage operations by kind and result.",
		}, []string{"op", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.OrdersPlaced,
		m.CacheLookups,
		m.FeedEvents,
		m.FeedSubscribers,
		m.PushDeliveries,
		m.Uploads,
	)

	if cfg != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "build_info",
			Help:        "Constant 1, labelled with the running environment.",
			ConstLabels: prometheus.Labels{"env": cfg.Env.Env, "service": cfg.Env.ServiceName},
		}, func() float64 { return 1 }))
	}

	return m
}

// RegisterDB exports connection pool stats for db under the given name.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Nil-safe helpers let callers built without metrics skip the checks.

func (m *Metrics) CacheResult(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) OrderPlaced(kind string) {
	if m == nil {
		return
	}
	m.OrdersPlaced.WithLabelValues(kind).Inc()
}

func (m *Metrics) FeedPublished(table, changeType string) {
	if m == nil {
		return
	}
	m.FeedEvents.WithLabelValues(table, changeType).Inc()
}

func (m *Metrics) SubscriberDelta(delta float64) {
	if m == nil {
		return
	}
	m.FeedSubscribers.Add(delta)
}

func (m *Metrics) PushResult(success, failure int) {
	if m == nil {
		return
	}
	m.PushDeliveries.WithLabelValues("success").Add(float64(success))
	m.PushDeliveries.WithLabelValues("failure").Add(float64(failure))
}

func (m *Metrics) StorageOp(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Uploads.WithLabelValues(op, result).Inc()
}
