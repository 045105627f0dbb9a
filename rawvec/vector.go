package rawvec

import (
	"fmt"

	"github.com/hupe1980/slotvec/internal/conv"
	"github.com/hupe1980/slotvec/mem"
)

// Callbacks carry the element behaviour the engine cannot infer from bytes.
// Every callback receives a view of exactly one slot, valid only for the
// duration of the call.
type Callbacks struct {
	// Equal reports whether elem matches key. Optional; when nil, matching
	// falls back to byte-for-byte equality.
	Equal func(elem, key []byte) bool
	// Destroy releases whatever elem owns. Required.
	Destroy func(elem []byte)
	// Print renders elem for inspection. Required.
	Print func(elem []byte)
	// Construct builds an element in place from args. Optional; Emplace
	// fails without it. A non-nil error aborts the Emplace.
	Construct func(slot []byte, args any) error
}

// Vector is a growable sequence of fixed-size elements.
type Vector struct {
	data        []byte
	capacity    int
	length      int
	elemSize    int
	maxCapacity int
	gen         uint64
	freed       bool
	inCallback  bool
	alloc       mem.Allocator
	cb          Callbacks
}

// New creates a vector of elemSize-byte elements.
//
// Destroy and Print are mandatory. The initial buffer holds
// DefaultCapacity slots unless WithCapacity says otherwise, and is
// zero-filled.
func New(elemSize int, cb Callbacks, optFns ...Option) (*Vector, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	switch {
	case elemSize <= 0:
		return nil, &ConfigError{Field: "element size", Reason: fmt.Sprintf("must be > 0, got %d", elemSize)}
	case cb.Destroy == nil:
		return nil, &ConfigError{Field: "destroy callback", Reason: "is required"}
	case cb.Print == nil:
		return nil, &ConfigError{Field: "print callback", Reason: "is required"}
	case o.maxCapacity <= 0:
		return nil, &ConfigError{Field: "max capacity", Reason: fmt.Sprintf("must be > 0, got %d", o.maxCapacity)}
	case o.capacity > o.maxCapacity:
		return nil, &ConfigError{Field: "capacity", Reason: fmt.Sprintf("%d exceeds max capacity %d", o.capacity, o.maxCapacity)}
	}

	size, err := conv.MulInt(o.capacity, elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	data, err := o.allocator.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	return &Vector{
		data:        data,
		capacity:    o.capacity,
		elemSize:    elemSize,
		maxCapacity: o.maxCapacity,
		alloc:       o.allocator,
		cb:          cb,
	}, nil
}

// Len returns the number of live elements. It returns 0 for a nil or
// freed vector.
func (v *Vector) Len() int {
	if v == nil || v.freed {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated slots. It returns 0 for a nil or
// freed vector.
func (v *Vector) Cap() int {
	if v == nil || v.freed {
		return 0
	}
	return v.capacity
}

// ElemSize returns the element width in bytes. It returns 0 for a nil or
// freed vector.
func (v *Vector) ElemSize() int {
	if v == nil || v.freed {
		return 0
	}
	return v.elemSize
}

// MaxCap returns the capacity at which growth saturates.
func (v *Vector) MaxCap() int {
	if v == nil || v.freed {
		return 0
	}
	return v.maxCapacity
}

// Bytes returns a view of the whole slot buffer, free slots included.
// The view is invalidated by growth and Free.
func (v *Vector) Bytes() []byte {
	if v == nil || v.freed {
		return nil
	}
	return v.data[:v.capacity*v.elemSize]
}

// Free destroys every live element in slot order and releases the buffer.
// The vector is unusable afterwards; further calls return ErrNullHandle.
func (v *Vector) Free() error {
	if err := v.checkMutable(); err != nil {
		return err
	}

	for i := 0; i < v.length; i++ {
		v.destroy(i)
	}

	err := v.alloc.Free(v.data)

	v.data = nil
	v.length = 0
	v.capacity = 0
	v.gen++
	v.freed = true

	if err != nil {
		return fmt.Errorf("rawvec: release buffer: %w", err)
	}
	return nil
}

func (v *Vector) check() error {
	if v == nil || v.freed {
		return ErrNullHandle
	}
	return nil
}

func (v *Vector) checkMutable() error {
	if err := v.check(); err != nil {
		return err
	}
	if v.inCallback {
		return ErrReentrantCall
	}
	return nil
}

func (v *Vector) checkElem(elem []byte) error {
	if elem == nil {
		return ErrInvalidElement
	}
	if len(elem) != v.elemSize {
		return &ElementSizeError{Want: v.elemSize, Got: len(elem)}
	}
	return nil
}

// slot returns the view of slot i. Callers guarantee i < capacity.
func (v *Vector) slot(i int) []byte {
	start := i * v.elemSize
	end := start + v.elemSize
	return v.data[start:end:end]
}

// span returns the bytes of slots [from, to).
func (v *Vector) span(from, to int) []byte {
	return v.data[from*v.elemSize : to*v.elemSize]
}

func (v *Vector) destroy(i int) {
	defer v.enterCallback()()
	v.cb.Destroy(v.slot(i))
}

func (v *Vector) print(i int) {
	defer v.enterCallback()()
	v.cb.Print(v.slot(i))
}

func (v *Vector) construct(i int, args any) error {
	defer v.enterCallback()()
	return v.cb.Construct(v.slot(i), args)
}

// enterCallback marks the vector as running user code. The returned func
// restores the previous state.
func (v *Vector) enterCallback() func() {
	prev := v.inCallback
	v.inCallback = true
	return func() { v.inCallback = prev }
}
