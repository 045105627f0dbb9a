package slotvec

import (
	"github.com/hupe1980/slotvec/mem"
	"github.com/hupe1980/slotvec/rawvec"
)

// Option configures a Vector.
type Option func(*options)

type options struct {
	raw     []rawvec.Option
	logger  *Logger
	metrics MetricsCollector
	name    string
}

// WithCapacity sets the number of slots allocated up front.
// Zero is allowed; the first insertion then grows the buffer to one slot.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.raw = append(o.raw, rawvec.WithCapacity(n))
	}
}

// WithMaxCapacity caps how far the buffer may grow. Growth saturates at n;
// once n slots are live further insertions fail with ErrCapacityExhausted.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.raw = append(o.raw, rawvec.WithMaxCapacity(n))
	}
}

// WithAllocator sets the allocator that owns the slot buffer.
func WithAllocator(a mem.Allocator) Option {
	return func(o *options) {
		o.raw = append(o.raw, rawvec.WithAllocator(a))
	}
}

// WithLogger sets the logger used for growth and failure events.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the collector notified of every operation.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithName labels the vector in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}
