package slotvec

import (
	"fmt"

	"github.com/hupe1980/slotvec/rawvec"
)

// Sentinel errors shared with the untyped engine. Match them with errors.Is.
var (
	ErrNullHandle           = rawvec.ErrNullHandle
	ErrInvalidElement       = rawvec.ErrInvalidElement
	ErrInvalidIndex         = rawvec.ErrInvalidIndex
	ErrAllocationFailed     = rawvec.ErrAllocationFailed
	ErrCapacityExhausted    = rawvec.ErrCapacityExhausted
	ErrInvalidConfiguration = rawvec.ErrInvalidConfiguration
	ErrNotFound             = rawvec.ErrNotFound
	ErrReentrantCall        = rawvec.ErrReentrantCall
)

type (
	// IndexError reports an index outside the permitted range.
	IndexError = rawvec.IndexError
	// ConfigError names the setting New rejected.
	ConfigError = rawvec.ConfigError
	// ElementSizeError reports an element of the wrong width.
	ElementSizeError = rawvec.ElementSizeError
)

// ErrCodec indicates that a value could not be converted to or from its
// slot representation.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrCodec struct {
	Codec string
	Op    string
	cause error
}

func (e *ErrCodec) Error() string {
	return fmt.Sprintf("codec %s: %s: %v", e.Codec, e.Op, e.cause)
}

func (e *ErrCodec) Unwrap() error { return e.cause }
