package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas Prometheus del servicio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeOperationsTotal   *prometheus.CounterVec
	storeOperationDuration *prometheus.HistogramVec
}

// New crea un registry propio con las métricas del servicio y los
// collectors estándar de Go/proceso.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	return NewWithRegistry(reg)
}

func NewWithRegistry(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birds_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "birds_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.storeOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birds_store_operations_total",
			Help: "Total number of storage operations",
		},
		[]string{"driver", "operation", "status"}, // status: success, not_found, error
	)
	m.storeOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "birds_store_operation_duration_seconds",
			Help:    "Storage operation latency",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"driver", "operation"},
	)

	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Describe implementa prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.httpRequestsTotal.Describe(ch)
	m.httpRequestDuration.Describe(ch)
	m.storeOperationsTotal.Describe(ch)
	m.storeOperationDuration.Describe(ch)
}

// Collect implementa prometheus.Collector
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.httpRequestsTotal.Collect(ch)
	m.httpRequestDuration.Collect(ch)
	m.storeOperationsTotal.Collect(ch)
	m.storeOperationDuration.Collect(ch)
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) RecordStoreOperation(driver, operation, status string, d time.Duration) {
	m.storeOperationsTotal.WithLabelValues(driver, operation, status).Inc()
	m.storeOperationDuration.WithLabelValues(driver, operation).Observe(d.Seconds())
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
