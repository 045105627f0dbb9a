package slotvec

import (
	"errors"
	"iter"
	"time"

	"github.com/hupe1980/slotvec/codec"
	"github.com/hupe1980/slotvec/rawvec"
)

// Config carries the typed element behaviour of a Vector.
type Config[T any] struct {
	// Codec converts values to and from their fixed-size slot form.
	// Defaults to codec.NewBinary[T]().
	Codec codec.Codec[T]
	// Equal reports whether elem matches key. Optional; when nil, values
	// match when their encodings are byte-for-byte equal.
	Equal func(elem, key T) bool
	// Destroy releases whatever an element owns. Required.
	Destroy func(elem T)
	// Print renders an element for inspection. Required.
	Print func(elem T)
	// Construct builds an element in place from args. Optional; Emplace
	// fails without it. elem starts out as the zero value.
	Construct func(elem *T, args any)
}

// Vector is a growable sequence of T stored by value in a contiguous
// buffer of fixed-size slots.
//
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	raw     *rawvec.Vector
	codec   codec.Codec[T]
	logger  *Logger
	metrics MetricsCollector

	// cbErr collects codec failures raised inside slot callbacks during
	// the current call.
	cbErr error
}

// New creates an empty vector of T.
//
// Example:
//
//	v, err := slotvec.New(slotvec.Config[uint32]{
//		Destroy: func(uint32) {},
//		Print:   func(x uint32) { fmt.Println(x) },
//	}, slotvec.WithCapacity(4))
func New[T any](cfg Config[T], optFns ...Option) (*Vector[T], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	c := cfg.Codec
	if c == nil {
		b, err := codec.NewBinary[T]()
		if err != nil {
			return nil, &ConfigError{Field: "codec", Reason: err.Error()}
		}
		c = b
	}

	logger := o.logger
	if o.name != "" {
		logger = logger.WithName(o.name)
	}

	v := &Vector[T]{
		codec:   c,
		logger:  logger.WithElemSize(c.Size()),
		metrics: o.metrics,
	}

	raw, err := rawvec.New(c.Size(), v.callbacks(cfg), o.raw...)
	if err != nil {
		return nil, err
	}
	v.raw = raw

	return v, nil
}

// Push appends x and returns its index.
func (v *Vector[T]) Push(x T) (int, error) {
	if err := v.check(); err != nil {
		return -1, err
	}

	start := time.Now()
	capBefore := v.raw.Cap()

	index := -1
	buf, err := v.encode(x)
	if err == nil {
		var ref rawvec.Ref
		if ref, err = v.raw.Push(buf); err == nil {
			index = ref.Index()
		}
	}

	v.metrics.RecordPush(time.Since(start), err)
	v.observe("push", capBefore, err)

	return index, err
}

// Emplace appends an element built by the Construct callback from args
// and returns its index.
func (v *Vector[T]) Emplace(args any) (int, error) {
	if err := v.check(); err != nil {
		return -1, err
	}

	start := time.Now()
	capBefore := v.raw.Cap()

	index := -1
	ref, err := v.raw.Emplace(args)
	if err == nil {
		index = ref.Index()
	}

	v.metrics.RecordPush(time.Since(start), err)
	v.observe("emplace", capBefore, err)

	return index, err
}

// InsertAt writes x into slot index, growing the buffer until the slot
// exists. Nothing is shifted, Len is unchanged and the previous occupant is
// not destroyed. Use Replace or InsertShift for the managed variants.
func (v *Vector[T]) InsertAt(x T, index int) error {
	if err := v.check(); err != nil {
		return err
	}

	start := time.Now()
	capBefore := v.raw.Cap()

	buf, err := v.encode(x)
	if err == nil {
		err = v.raw.InsertAt(buf, index)
	}

	v.metrics.RecordPush(time.Since(start), err)
	v.observe("insert_at", capBefore, err)

	return err
}

// Replace destroys the element at index and stores x in its place.
func (v *Vector[T]) Replace(index int, x T) error {
	if err := v.check(); err != nil {
		return err
	}

	start := time.Now()

	buf, err := v.encode(x)
	if err == nil {
		err = v.settle(v.raw.Replace(index, buf))
	}

	v.metrics.RecordPush(time.Since(start), err)

	return err
}

// InsertShift inserts x at index, moving later elements up by one.
func (v *Vector[T]) InsertShift(index int, x T) error {
	if err := v.check(); err != nil {
		return err
	}

	start := time.Now()
	capBefore := v.raw.Cap()

	buf, err := v.encode(x)
	if err == nil {
		err = v.raw.InsertShift(index, buf)
	}

	v.metrics.RecordPush(time.Since(start), err)
	v.observe("insert_shift", capBefore, err)

	return err
}

// Find returns the first element matching key.
// A miss returns ErrNotFound.
func (v *Vector[T]) Find(key T) (T, error) {
	var zero T

	index, err := v.IndexOf(key)
	if err != nil {
		return zero, err
	}
	return v.Get(index)
}

// IndexOf returns the index of the first element matching key.
func (v *Vector[T]) IndexOf(key T) (int, error) {
	if err := v.check(); err != nil {
		return -1, err
	}

	start := time.Now()

	index := -1
	buf, err := v.encode(key)
	if err == nil {
		index, err = v.raw.IndexOf(buf)
		err = v.settle(err)
		if err != nil {
			index = -1
		}
	}

	v.metrics.RecordFind(time.Since(start), err == nil)

	return index, err
}

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T

	if err := v.check(); err != nil {
		return zero, err
	}

	ref, err := v.raw.GetAt(index)
	if err != nil {
		return zero, err
	}
	return v.decode(ref.Bytes())
}

// DeleteKey destroys and removes the first element matching key.
func (v *Vector[T]) DeleteKey(key T) error {
	if err := v.check(); err != nil {
		return err
	}

	start := time.Now()

	buf, err := v.encode(key)
	if err == nil {
		err = v.settle(v.raw.DeleteByKey(buf))
	}

	v.metrics.RecordDelete(time.Since(start), err)

	return err
}

// DeleteAt destroys and removes the element at index.
func (v *Vector[T]) DeleteAt(index int) error {
	if err := v.check(); err != nil {
		return err
	}

	start := time.Now()
	err := v.settle(v.raw.DeleteAt(index))
	v.metrics.RecordDelete(time.Since(start), err)

	return err
}

// DeleteIndices destroys and removes the elements at the given indices in
// one pass. If any index is out of range nothing is removed.
func (v *Vector[T]) DeleteIndices(indices ...int) error {
	if err := v.check(); err != nil {
		return err
	}

	start := time.Now()
	err := v.settle(v.raw.DeleteIndices(indices...))
	v.metrics.RecordDelete(time.Since(start), err)

	return err
}

// DeleteFunc destroys and removes every element for which match returns
// true and reports how many were removed.
func (v *Vector[T]) DeleteFunc(match func(T) bool) (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	if match == nil {
		return 0, &ConfigError{Field: "match func", Reason: "is required"}
	}

	start := time.Now()
	n, err := v.raw.DeleteFunc(func(b []byte) bool {
		x, ok := v.decodeIn("match", b)
		return ok && match(x)
	})
	err = v.settle(err)
	v.metrics.RecordDelete(time.Since(start), err)

	return n, err
}

// Clear forgets every element without destroying it. Whatever the elements
// own is leaked unless the caller released it first; see Reset.
func (v *Vector[T]) Clear() error {
	if err := v.check(); err != nil {
		return err
	}
	return v.raw.Clear()
}

// Reset destroys every element and empties the vector, keeping its buffer.
func (v *Vector[T]) Reset() error {
	if err := v.check(); err != nil {
		return err
	}
	return v.settle(v.raw.Reset())
}

// Close destroys every element and releases the buffer.
// Every later call returns ErrNullHandle.
func (v *Vector[T]) Close() error {
	if err := v.check(); err != nil {
		return err
	}

	n := v.raw.Len()
	err := v.raw.Free()
	if errors.Is(err, ErrNullHandle) || errors.Is(err, ErrReentrantCall) {
		return err
	}
	err = v.settle(err)

	v.logger.LogClose(n, err)

	return err
}

// Print invokes the Print callback on every element in order.
func (v *Vector[T]) Print() error {
	if err := v.check(); err != nil {
		return err
	}
	return v.settle(v.raw.Print())
}

// All iterates over the elements in order. Mutating the vector while
// iterating stops the iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.check() != nil {
			return
		}
		for i, b := range v.raw.All() {
			x, err := v.decode(b)
			if err != nil {
				v.logger.LogCodecFailure("iterate", err)
				return
			}
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in order.
func (v *Vector[T]) Values() ([]T, error) {
	if err := v.check(); err != nil {
		return nil, err
	}

	out := make([]T, 0, v.raw.Len())
	for _, b := range v.raw.All() {
		x, err := v.decode(b)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// Len returns the number of elements, or 0 for a nil or closed vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.raw.Len()
}

// Cap returns the number of allocated slots, or 0 for a nil or closed vector.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.raw.Cap()
}

// ElemSize returns the slot width in bytes, or 0 for a nil or closed vector.
func (v *Vector[T]) ElemSize() int {
	if v == nil {
		return 0
	}
	return v.raw.ElemSize()
}

// Raw returns the untyped engine backing v.
func (v *Vector[T]) Raw() *rawvec.Vector {
	if v == nil {
		return nil
	}
	return v.raw
}

func (v *Vector[T]) check() error {
	if v == nil || v.raw == nil {
		return ErrNullHandle
	}
	return nil
}

// encode returns x in slot form in a fresh buffer.
func (v *Vector[T]) encode(x T) ([]byte, error) {
	buf := make([]byte, v.codec.Size())
	if err := v.codec.Encode(buf, x); err != nil {
		return nil, &ErrCodec{Codec: v.codec.Name(), Op: "encode", cause: err}
	}
	return buf, nil
}

func (v *Vector[T]) decode(b []byte) (T, error) {
	x, err := v.codec.Decode(b)
	if err != nil {
		var zero T
		return zero, &ErrCodec{Codec: v.codec.Name(), Op: "decode", cause: err}
	}
	return x, nil
}

// settle joins err with any codec failures collected from slot callbacks
// and resets the collection.
func (v *Vector[T]) settle(err error) error {
	cbErr := v.cbErr
	v.cbErr = nil
	if cbErr == nil {
		return err
	}
	if err == nil {
		return cbErr
	}
	return errors.Join(err, cbErr)
}

// observe reports growth and allocation failures of a mutating call.
func (v *Vector[T]) observe(op string, capBefore int, err error) {
	if c := v.raw.Cap(); c > capBefore {
		v.metrics.RecordGrow(capBefore, c)
		v.logger.LogGrow(capBefore, c, v.raw.Len())
	}
	if errors.Is(err, ErrAllocationFailed) {
		v.metrics.RecordAllocFailure(op)
		v.logger.LogAllocFailure(op, capBefore, err)
	}
}

// callbacks adapts the typed callbacks to slot callbacks. Elements that
// fail to decode are logged and skipped; the failure is returned by the
// operation that ran the callback.
func (v *Vector[T]) callbacks(cfg Config[T]) rawvec.Callbacks {
	var cb rawvec.Callbacks

	if cfg.Destroy != nil {
		cb.Destroy = func(b []byte) {
			if x, ok := v.decodeIn("destroy", b); ok {
				cfg.Destroy(x)
			}
		}
	}

	if cfg.Print != nil {
		cb.Print = func(b []byte) {
			if x, ok := v.decodeIn("print", b); ok {
				cfg.Print(x)
			}
		}
	}

	if cfg.Equal != nil {
		cb.Equal = func(elem, key []byte) bool {
			x, ok := v.decodeIn("equal", elem)
			if !ok {
				return false
			}
			k, ok := v.decodeIn("equal", key)
			if !ok {
				return false
			}
			return cfg.Equal(x, k)
		}
	}

	if cfg.Construct != nil {
		cb.Construct = func(slot []byte, args any) error {
			var x T
			cfg.Construct(&x, args)
			if err := v.codec.Encode(slot, x); err != nil {
				v.logger.LogCodecFailure("construct", err)
				return &ErrCodec{Codec: v.codec.Name(), Op: "encode", cause: err}
			}
			return nil
		}
	}

	return cb
}

func (v *Vector[T]) decodeIn(callback string, b []byte) (T, bool) {
	x, err := v.decode(b)
	if err != nil {
		v.logger.LogCodecFailure(callback, err)
		v.cbErr = errors.Join(v.cbErr, err)
		return x, false
	}
	return x, true
}
