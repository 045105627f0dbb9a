package rawvec

import (
	"errors"
	"fmt"
)

var (
	// ErrNullHandle is returned for operations on a nil or freed vector.
	ErrNullHandle = errors.New("rawvec: nil or freed vector")
	// ErrInvalidElement is returned for a nil element or key, or an
	// element whose length differs from the element size.
	ErrInvalidElement = errors.New("rawvec: invalid element")
	// ErrInvalidIndex is returned for indices outside the permitted range.
	ErrInvalidIndex = errors.New("rawvec: invalid index")
	// ErrAllocationFailed is returned when the backing buffer could not be
	// acquired or grown. The vector keeps its previous state.
	ErrAllocationFailed = errors.New("rawvec: allocation failed")
	// ErrCapacityExhausted is returned when a vector already at its maximum
	// capacity would have to grow. It wraps ErrAllocationFailed.
	ErrCapacityExhausted = fmt.Errorf("%w: capacity exhausted", ErrAllocationFailed)
	// ErrInvalidConfiguration is returned by New for unusable settings, and
	// by Emplace when no constructor was configured.
	ErrInvalidConfiguration = errors.New("rawvec: invalid configuration")
	// ErrNotFound is returned when no live element matches a key.
	// It is an ordinary negative result, not a failure of the vector.
	ErrNotFound = errors.New("rawvec: not found")
	// ErrReentrantCall is returned when a callback tries to mutate the
	// vector that invoked it.
	ErrReentrantCall = errors.New("rawvec: vector mutated from inside a callback")
)

// IndexError reports an index outside [0, Bound).
type IndexError struct {
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("rawvec: index %d out of range [0, %d)", e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// ConfigError names the setting New rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rawvec: invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// ElementSizeError reports an element of the wrong width.
type ElementSizeError struct {
	Want int
	Got  int
}

func (e *ElementSizeError) Error() string {
	return fmt.Sprintf("rawvec: element size mismatch: expected %d bytes, got %d", e.Want, e.Got)
}

func (e *ElementSizeError) Unwrap() error { return ErrInvalidElement }
