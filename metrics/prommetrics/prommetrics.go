// Package prommetrics exports slotvec operation metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/slotvec"
)

const namespace = "slotvec"

var _ slotvec.MetricsCollector = (*Collector)(nil)

// Collector implements slotvec.MetricsCollector on top of Prometheus
// counters, a gauge and a latency histogram.
type Collector struct {
	opLatency     *prometheus.HistogramVec
	ops           *prometheus.CounterVec
	grows         prometheus.Counter
	capacity      prometheus.Gauge
	findMisses    prometheus.Counter
	allocFailures *prometheus.CounterVec
}

// Options configures a Collector.
type Options struct {
	// Subsystem is placed between the namespace and the metric name.
	Subsystem string
	// ConstLabels are attached to every metric, e.g. to tell vectors apart.
	ConstLabels prometheus.Labels
	// Buckets overrides the latency histogram buckets.
	Buckets []float64
}

// New creates a Collector and registers it with reg. A nil reg registers
// with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, opts Options) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.ExponentialBuckets(50e-9, 4, 10)
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   opts.Subsystem,
			Name:        "operation_latency_seconds",
			Help:        "Latency of vector operations",
			ConstLabels: opts.ConstLabels,
			Buckets:     buckets,
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   opts.Subsystem,
			Name:        "operations_total",
			Help:        "Total vector operations",
			ConstLabels: opts.ConstLabels,
		}, []string{"op", "status"}),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   opts.Subsystem,
			Name:        "grows_total",
			Help:        "Total buffer reallocations",
			ConstLabels: opts.ConstLabels,
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   opts.Subsystem,
			Name:        "capacity_slots",
			Help:        "Capacity after the most recent growth",
			ConstLabels: opts.ConstLabels,
		}),
		findMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   opts.Subsystem,
			Name:        "find_misses_total",
			Help:        "Total lookups that matched nothing",
			ConstLabels: opts.ConstLabels,
		}),
		allocFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   opts.Subsystem,
			Name:        "allocation_failures_total",
			Help:        "Total operations aborted because the buffer could not grow",
			ConstLabels: opts.ConstLabels,
		}, []string{"op"}),
	}

	for _, col := range []prometheus.Collector{
		c.opLatency, c.ops, c.grows, c.capacity, c.findMisses, c.allocFailures,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, opts Options) *Collector {
	c, err := New(reg, opts)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordPush implements slotvec.MetricsCollector.
func (c *Collector) RecordPush(d time.Duration, err error) {
	c.observe("push", d, status(err))
}

// RecordGrow implements slotvec.MetricsCollector.
func (c *Collector) RecordGrow(_, newCap int) {
	c.grows.Inc()
	c.capacity.Set(float64(newCap))
}

// RecordDelete implements slotvec.MetricsCollector.
func (c *Collector) RecordDelete(d time.Duration, err error) {
	c.observe("delete", d, status(err))
}

// RecordFind implements slotvec.MetricsCollector.
func (c *Collector) RecordFind(d time.Duration, found bool) {
	s := "hit"
	if !found {
		s = "miss"
		c.findMisses.Inc()
	}
	c.observe("find", d, s)
}

// RecordAllocFailure implements slotvec.MetricsCollector.
func (c *Collector) RecordAllocFailure(op string) {
	c.allocFailures.WithLabelValues(op).Inc()
}

func (c *Collector) observe(op string, d time.Duration, status string) {
	c.opLatency.WithLabelValues(op, status).Observe(d.Seconds())
	c.ops.WithLabelValues(op, status).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
