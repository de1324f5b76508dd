// Package prom exports interner metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, _ := prom.NewCollector(reg, prom.WithNamespace("myapp"))
//	in, _ := intern.New[string, uint32](intern.Strings[string](), intern.WithMetricsCollector(c))
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/intern"
)

var _ intern.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace   string
	constLabels prometheus.Labels
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace. The default is "intern".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithConstLabels attaches fixed labels to every metric, for example to tell
// several interners apart.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) {
		o.constLabels = labels
	}
}

// Collector implements intern.MetricsCollector with Prometheus counters.
type Collector struct {
	interns   *prometheus.CounterVec
	removes   *prometheus.CounterVec
	clears    prometheus.Counter
	cleared   prometheus.Counter
	overflows prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg. A nil
// reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	opts := options{namespace: "intern"}
	for _, fn := range optFns {
		fn(&opts)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		interns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.namespace,
			Name:        "interns_total",
			Help:        "Intern operations by result (hit, miss, overflow).",
			ConstLabels: opts.constLabels,
		}, []string{"result"}),
		removes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.namespace,
			Name:        "removes_total",
			Help:        "Remove operations by result (found, missing).",
			ConstLabels: opts.constLabels,
		}, []string{"result"}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.namespace,
			Name:        "clears_total",
			Help:        "Clear operations.",
			ConstLabels: opts.constLabels,
		}),
		cleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.namespace,
			Name:        "cleared_values_total",
			Help:        "Values dropped by Clear.",
			ConstLabels: opts.constLabels,
		}),
	}
	c.overflows = c.interns.WithLabelValues("overflow")

	for _, m := range []prometheus.Collector{c.interns, c.removes, c.clears, c.cleared} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on registration errors.
func MustNewCollector(reg prometheus.Registerer, optFns ...Option) *Collector {
	c, err := NewCollector(reg, optFns...)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordIntern implements intern.MetricsCollector.
func (c *Collector) RecordIntern(hit bool, err error) {
	switch {
	case err != nil:
		c.overflows.Inc()
	case hit:
		c.interns.WithLabelValues("hit").Inc()
	default:
		c.interns.WithLabelValues("miss").Inc()
	}
}

// RecordRemove implements intern.MetricsCollector.
func (c *Collector) RecordRemove(found bool) {
	result := "found"
	if !found {
		result = "missing"
	}
	c.removes.WithLabelValues(result).Inc()
}

// RecordClear implements intern.MetricsCollector.
func (c *Collector) RecordClear(dropped int) {
	c.clears.Inc()
	c.cleared.Add(float64(dropped))
}
