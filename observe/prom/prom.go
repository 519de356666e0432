// Package prom implements a fence.Observer backed by real Prometheus
// instruments. Unlike the teacher's original observer (which imported
// github.com/prometheus/client_golang but never used it, hand-rolling
// atomic counters instead), Metrics here registers actual
// prometheus.Counter/CounterVec/Histogram values against a
// prometheus.Registerer and records against them from the fence.Observer
// callbacks.
package prom

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Metrics observer.
type Option func(*config)

type config struct {
	namespace  string
	registerer prometheus.Registerer
}

// WithNamespace sets the Prometheus metric namespace (default "fence").
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithRegisterer overrides the Registerer instruments are registered
// against (default prometheus.DefaultRegisterer).
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

// Metrics is a fence.Observer that records fence and trigger activity as
// Prometheus instruments.
type Metrics struct {
	entered        prometheus.Counter
	settled        *prometheus.CounterVec
	triggersFired  *prometheus.CounterVec
	triggerPanics  prometheus.Counter
	reasonsPerExit prometheus.Histogram
}

// New constructs a Metrics observer and registers its instruments. It
// returns an error if registration fails (for example, a duplicate
// namespace registered against the same Registerer).
func New(opts ...Option) (*Metrics, error) {
	cfg := config{namespace: "fence", registerer: prometheus.DefaultRegisterer}
	for _, o := range opts {
		o(&cfg)
	}

	m := &Metrics{
		entered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "entered_total",
			Help:      "Total number of fences entered.",
		}),
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "settled_total",
			Help:      "Total number of fences settled, labeled by whether cancellation occurred.",
		}, []string{"cancelled"}),
		triggersFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "trigger_fired_total",
			Help:      "Total number of fences whose first trigger fired, labeled by that trigger's kind and code.",
		}, []string{"kind", "code"}),
		triggerPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "trigger_panic_total",
			Help:      "Total number of panics recovered from a Trigger's Check or callback.",
		}),
		reasonsPerExit: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "reasons_per_exit",
			Help:      "Number of reasons recorded by the time a fence settled.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		}),
	}

	collectors := []prometheus.Collector{
		m.entered, m.settled, m.triggersFired, m.triggerPanics, m.reasonsPerExit,
	}
	for _, c := range collectors {
		if err := cfg.registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FenceEntered implements fence.Observer.
func (m *Metrics) FenceEntered(_ context.Context) {
	m.entered.Inc()
}

// FenceSettled implements fence.Observer.
func (m *Metrics) FenceSettled(_ context.Context, cancelled bool, reasonCount int) {
	label := "false"
	if cancelled {
		label = "true"
	}
	m.settled.WithLabelValues(label).Inc()
	m.reasonsPerExit.Observe(float64(reasonCount))
}

// TriggerFired implements fence.Observer.
func (m *Metrics) TriggerFired(_ context.Context, kind string, code string, _ string) {
	m.triggersFired.WithLabelValues(kind, code).Inc()
}

// TriggerPanicked implements fence.Observer.
func (m *Metrics) TriggerPanicked(_ context.Context, _ any) {
	m.triggerPanics.Inc()
}
