// Package codec turns typed values into fixed-width slot bytes.
//
// A slot vector stores every element in exactly Size() bytes, so only
// fixed-size encodings qualify: variable-length formats (JSON, msgpack)
// cannot be addressed by index*size.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrVariableSize is returned for types without a fixed binary size.
	ErrVariableSize = errors.New("codec: type has no fixed binary size")
	// ErrSizeMismatch is returned when a buffer does not match Size().
	ErrSizeMismatch = errors.New("codec: buffer size mismatch")
)

// Codec encodes values of T into exactly Size() bytes and back.
type Codec[T any] interface {
	// Size returns the encoded width in bytes.
	Size() int
	// Encode writes v into dst, which must be Size() bytes long.
	Encode(dst []byte, v T) error
	// Decode reads a value from src, which must be Size() bytes long.
	Decode(src []byte) (T, error)
	// Name returns a stable identifier for the codec.
	Name() string
}

// Binary is a fixed-width codec backed by encoding/binary. It supports
// bools, sized integers and floats, and arrays and structs of those.
type Binary[T any] struct {
	size  int
	order binary.ByteOrder
}

// NewBinary returns a little-endian Binary codec for T.
func NewBinary[T any]() (*Binary[T], error) {
	return NewBinaryOrder[T](binary.LittleEndian)
}

// NewBinaryOrder returns a Binary codec for T using the given byte order.
func NewBinaryOrder[T any](order binary.ByteOrder) (*Binary[T], error) {
	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		return nil, fmt.Errorf("%w: %T", ErrVariableSize, zero)
	}
	return &Binary[T]{size: size, order: order}, nil
}

// MustBinary is like NewBinary but panics on error.
func MustBinary[T any]() *Binary[T] {
	c, err := NewBinary[T]()
	if err != nil {
		panic(err)
	}
	return c
}

// Size implements Codec.
func (c *Binary[T]) Size() int { return c.size }

// Name implements Codec.
func (c *Binary[T]) Name() string { return "binary" }

// Encode implements Codec.
func (c *Binary[T]) Encode(dst []byte, v T) error {
	if len(dst) != c.size {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, c.size, len(dst))
	}
	_, err := binary.Encode(dst, c.order, v)
	return err
}

// Decode implements Codec.
func (c *Binary[T]) Decode(src []byte) (T, error) {
	var v T
	if len(src) != c.size {
		return v, fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, c.size, len(src))
	}
	_, err := binary.Decode(src, c.order, &v)
	return v, err
}
