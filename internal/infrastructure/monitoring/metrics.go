package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. Each Metrics instance carries its
// own registry so tests can construct collectors without registration
// conflicts.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Domain metrics
	IntentsExtracted  *prometheus.CounterVec
	WireframesTotal   prometheus.Counter
	ComponentsEmitted *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry:  registry,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agent_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agent_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),

		IntentsExtracted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agent_intents_extracted_total",
				Help: "Total number of intents extracted, by intent type",
			},
			[]string{"type"},
		),
		WireframesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "agent_wireframes_total",
				Help: "Total number of wireframe specs synthesized",
			},
		),
		ComponentsEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agent_components_emitted_total",
				Help: "Total number of components emitted into wireframes, by component type",
			},
			[]string{"type"},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "agent_uptime_seconds",
			Help: "Seconds since the server started",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordIntent records one extracted intent.
func (m *Metrics) RecordIntent(intentType string) {
	m.IntentsExtracted.WithLabelValues(intentType).Inc()
}

// RecordWireframe records one synthesized wireframe and its components.
func (m *Metrics) RecordWireframe(componentTypes ...string) {
	m.WireframesTotal.Inc()
	for _, t := range componentTypes {
		m.ComponentsEmitted.WithLabelValues(t).Inc()
	}
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
