package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus instrumentation for script generation.
// Each server owns its own registry so multiple instances can coexist.
type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal  *prometheus.CounterVec
	GenerationSeconds *prometheus.HistogramVec
	GenerationErrors  *prometheus.CounterVec
}

// NewMetrics registers and returns the server metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "profiler_generations_total",
			Help: "Total number of script generation requests by parser variant.",
		}, []string{"variant"}),
		GenerationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "profiler_generation_duration_seconds",
			Help:    "Time spent running the extraction and generation pipeline.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"variant"}),
		GenerationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "profiler_generation_errors_total",
			Help: "Total number of failed script generation requests by parser variant.",
		}, []string{"variant"}),
	}
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// observeGeneration records a completed generation attempt.
func (m *Metrics) observeGeneration(variant string, started time.Time, err error) {
	m.GenerationsTotal.WithLabelValues(variant).Inc()
	m.GenerationSeconds.WithLabelValues(variant).Observe(time.Since(started).Seconds())
	if err != nil {
		m.GenerationErrors.WithLabelValues(variant).Inc()
	}
}
