package rawvec

import (
	"math"

	"github.com/hupe1980/slotvec/mem"
)

const (
	// DefaultCapacity is the initial slot count when none is requested.
	DefaultCapacity = 10
	// DefaultMaxCapacity bounds the capacity counter to 31 bits so that it
	// fits an int on every platform.
	DefaultMaxCapacity = math.MaxInt32
)

type options struct {
	capacity    int
	maxCapacity int
	allocator   mem.Allocator
}

// Option configures a Vector at construction.
type Option func(*options)

// WithCapacity sets the initial capacity. A negative value selects
// DefaultCapacity; zero is allowed and grows to one slot on first push.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = DefaultCapacity
		}
		o.capacity = n
	}
}

// WithMaxCapacity bounds the capacity counter. Growth saturates at n.
// For example WithMaxCapacity(255) models an 8-bit counter.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

// WithAllocator sets the allocator the slot buffer is drawn from.
// If nil is passed, the heap allocator is used.
func WithAllocator(a mem.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = mem.NewHeap()
		}
		o.allocator = a
	}
}

func defaultOptions() options {
	return options{
		capacity:    DefaultCapacity,
		maxCapacity: DefaultMaxCapacity,
		allocator:   mem.NewHeap(),
	}
}
