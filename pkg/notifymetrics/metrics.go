// Package notifymetrics exports notify.Manager activity as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	obs, err := notifymetrics.New(reg, notifymetrics.WithNamespace("app"))
//	if err != nil {
//		return err
//	}
//	m := notify.New(notify.WithObserver(obs))
//
// Notification keys become the "key" label, so keep the set of keys bounded.
// Use one Observer per Manager: the registrations gauge mirrors a single registry.
package notifymetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/notifykit/pkg/notify"
)

// Observer implements notify.Observer on top of Prometheus collectors.
type Observer struct {
	registrations *prometheus.GaugeVec
	registered    *prometheus.CounterVec
	forgotten     *prometheus.CounterVec
	dispatches    *prometheus.CounterVec
	invocations   *prometheus.CounterVec
	failures      *prometheus.CounterVec
}

var _ notify.Observer = (*Observer)(nil)

// Option configures the collectors created by New.
type Option func(*options)

type options struct {
	namespace   string
	subsystem   string
	constLabels prometheus.Labels
}

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithSubsystem sets the metric subsystem. Defaults to "notify".
func WithSubsystem(s string) Option {
	return func(o *options) { o.subsystem = s }
}

// WithConstLabels attaches constant labels, e.g. the manager name.
func WithConstLabels(l prometheus.Labels) Option {
	return func(o *options) { o.constLabels = l }
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer, opts ...Option) (*Observer, error) {
	o := options{subsystem: "notify"}
	for _, opt := range opts {
		opt(&o)
	}

	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Subsystem:   o.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: o.constLabels,
		}, []string{"key"})
	}

	obs := &Observer{
		registrations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   o.namespace,
			Subsystem:   o.subsystem,
			Name:        "registrations",
			Help:        "Number of live callback registrations.",
			ConstLabels: o.constLabels,
		}, []string{"key"}),
		registered:  counter("registered_total", "Callbacks registered."),
		forgotten:   counter("forgotten_total", "Callbacks removed by Forget."),
		dispatches:  counter("dispatches_total", "Notify calls for keys with registrations."),
		invocations: counter("invocations_total", "Callback invocations."),
		failures:    counter("invocation_failures_total", "Callback invocations that failed."),
	}

	for _, c := range []prometheus.Collector{
		obs.registrations, obs.registered, obs.forgotten,
		obs.dispatches, obs.invocations, obs.failures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return obs, nil
}

// MustNew is like New but panics on error.
func MustNew(reg prometheus.Registerer, opts ...Option) *Observer {
	obs, err := New(reg, opts...)
	if err != nil {
		panic(err)
	}
	return obs
}

func (o *Observer) Registered(key string) {
	o.registered.WithLabelValues(key).Inc()
	o.registrations.WithLabelValues(key).Inc()
}

func (o *Observer) Forgotten(key string, n int) {
	o.forgotten.WithLabelValues(key).Add(float64(n))
	o.registrations.WithLabelValues(key).Sub(float64(n))
}

func (o *Observer) Dispatched(key string, invoked, failed int) {
	o.dispatches.WithLabelValues(key).Inc()
	o.invocations.WithLabelValues(key).Add(float64(invoked))
	if failed > 0 {
		o.failures.WithLabelValues(key).Add(float64(failed))
	}
}

func (o *Observer) Cleared() {
	o.registrations.Reset()
}
