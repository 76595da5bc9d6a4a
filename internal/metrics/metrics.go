// Package metrics exposes calculator activity as Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Error reasons used as the "reason" label.
const (
	ReasonInvalidInput   = "invalid_input"
	ReasonUnknownSpecies = "unknown_species"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	errors       *prometheus.CounterVec
	standVolume  prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_volume",
			Name:      "calculations_total",
			Help:      "Completed volume calculations by species and height source.",
		}, []string{"species", "height_source"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_volume",
			Name:      "calculation_errors_total",
			Help:      "Rejected volume calculations by reason.",
		}, []string{"reason"}),
		standVolume: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forest_volume",
			Name:      "stand_volume_cubic_meters",
			Help:      "Total stand volume per calculation.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
	}

	m.registry.MustRegister(
		m.calculations,
		m.errors,
		m.standVolume,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveCalculation records a successful calculation.
func (m *Metrics) ObserveCalculation(species, heightSource string, standCubicMeters float64) {
	m.calculations.WithLabelValues(species, heightSource).Inc()
	m.standVolume.Observe(standCubicMeters)
}

// ObserveError records a rejected calculation.
func (m *Metrics) ObserveError(reason string) {
	m.errors.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
