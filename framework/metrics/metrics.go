// Package metrics exposes Prometheus counters for container resolutions.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/go-injector/framework/container"
)

// Error kinds used as the "kind" label of injector_resolution_errors_total.
const (
	KindUnknownKey      = "unknown_key"
	KindCyclic          = "cyclic_dependency"
	KindInvalidProvider = "invalid_provider"
	KindTypeMismatch    = "type_mismatch"
	KindProvider        = "provider"
)

// Collector holds the injector metrics on its own registry, so several
// applications (or tests) can coexist in one process.
type Collector struct {
	Resolutions *prometheus.CounterVec
	Errors      *prometheus.CounterVec
	registry    *prometheus.Registry
}

// NewCollector creates and registers all metrics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	m := &Collector{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "injector_resolutions_total",
				Help: "Total number of successful container resolutions",
			},
			[]string{"key", "mode"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "injector_resolution_errors_total",
				Help: "Total number of failed container resolutions",
			},
			[]string{"kind"},
		),
		registry: registry,
	}

	registry.MustRegister(m.Resolutions)
	registry.MustRegister(m.Errors)

	return m
}

// Instrument counts every resolution c performs from now on.
func (m *Collector) Instrument(c *container.Container) {
	c.AfterResolving(func(key string, mode container.Mode, _ any) {
		m.Resolutions.WithLabelValues(key, mode.String()).Inc()
	})
}

// ObserveError counts a failed resolution under its kind. nil is ignored.
func (m *Collector) ObserveError(err error) {
	if err == nil {
		return
	}
	m.Errors.WithLabelValues(Kind(err)).Inc()
}

// Kind classifies a resolution error.
func Kind(err error) string {
	var mismatch *container.TypeMismatchError
	switch {
	case errors.Is(err, container.ErrUnknownKey):
		return KindUnknownKey
	case errors.Is(err, container.ErrCyclicDependency):
		return KindCyclic
	case errors.Is(err, container.ErrInvalidProvider):
		return KindInvalidProvider
	case errors.As(err, &mismatch):
		return KindTypeMismatch
	default:
		return KindProvider
	}
}

// Registry returns the underlying registry.
func (m *Collector) Registry() *prometheus.Registry { return m.registry }

// Handler returns the Prometheus metrics handler.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
