// Package metrics exposes Prometheus collectors for chart builds,
// uploads and render latency.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the service collectors and the registry they live on.
type Metrics struct {
	registry      *prometheus.Registry
	chartsBuilt   *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
}

// New registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		chartsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xlchart_charts_built_total",
				Help: "Chart specification builds by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xlchart_uploads_total",
				Help: "Dataset uploads by input format and outcome",
			},
			[]string{"format", "outcome"},
		),
		renderSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xlchart_render_seconds",
				Help:    "Duration of chart rendering by output format",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
	}
	m.registry.MustRegister(m.chartsBuilt, m.uploads, m.renderSeconds)
	return m
}

// ChartBuilt records one build attempt.
func (m *Metrics) ChartBuilt(kind string, err error) {
	m.chartsBuilt.WithLabelValues(kind, outcome(err)).Inc()
}

// Upload records one dataset upload.
func (m *Metrics) Upload(format string, err error) {
	m.uploads.WithLabelValues(format, outcome(err)).Inc()
}

// ObserveRender records how long rendering to format took since start.
func (m *Metrics) ObserveRender(format string, start time.Time) {
	m.renderSeconds.WithLabelValues(format).Observe(time.Since(start).Seconds())
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
