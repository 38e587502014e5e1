package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aescanero/kvitems/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ ports.MetricsCollector = (*Collector)(nil)

// RequestDurationBuckets are the upper bounds of the request latency histogram
var RequestDurationBuckets = []float64{0.1, 0.3, 0.5, 1, 2, 5}

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	uptime       prometheus.Gauge
	appInfo      *prometheus.GaugeVec
	dbErrors     prometheus.Counter
}

// NewCollector creates a new Prometheus metrics collector with its own
// registry. version is exported once as the app_info label.
func NewCollector(version string) *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	c := &Collector{
		registry: registry,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: RequestDurationBuckets,
			},
			[]string{"endpoint"},
		),
		uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "app_uptime_seconds",
				Help: "Application uptime in seconds",
			},
		),
		appInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "app_info",
				Help: "Application version info",
			},
			[]string{"version"},
		),
		dbErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "db_errors_total",
				Help: "Total database errors",
			},
		),
	}

	c.appInfo.WithLabelValues(version).Set(1)

	return c
}

// ObserveRequest records one completed request
func (c *Collector) ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// IncDBErrors increments the database error counter
func (c *Collector) IncDBErrors() {
	c.dbErrors.Inc()
}

// SetUptime sets the uptime gauge
func (c *Collector) SetUptime(uptime time.Duration) {
	c.uptime.Set(uptime.Seconds())
}

// Registry returns the registry holding every instrument
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler renders the registry in the exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
