package mem

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

var (
	// ErrOutOfMemory is returned (wrapped) whenever an allocator cannot
	// satisfy a request.
	ErrOutOfMemory = errors.New("mem: out of memory")
	// ErrInvalidSize is returned for negative sizes or shrinking reallocations.
	ErrInvalidSize = errors.New("mem: invalid size")
	// ErrUnknownBuffer is returned when a buffer was not produced by the allocator.
	ErrUnknownBuffer = errors.New("mem: unknown buffer")
)

// Allocator acquires, grows and releases raw byte buffers.
type Allocator interface {
	// Alloc returns a zero-filled buffer of exactly size bytes.
	Alloc(size int) ([]byte, error)
	// Realloc returns a buffer of size bytes whose prefix equals buf and
	// whose suffix [len(buf), size) is zero-filled. buf must not be used
	// after a successful call.
	Realloc(buf []byte, size int) ([]byte, error)
	// Free releases buf.
	Free(buf []byte) error
}

// MaxAllocSize is the largest buffer the heap allocator will request (1 TiB).
// Larger sizes fail with ErrOutOfMemory.
const MaxAllocSize uint64 = 1 << 40

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
// A size of zero or less yields a nil slice.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) (buf []byte, err error) {
	if size <= 0 {
		return nil, nil
	}
	if uint64(size) > MaxAllocSize-Alignment {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", ErrOutOfMemory, size, MaxAllocSize)
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, size, re)
		}
	}()

	// We need enough space to shift the start pointer up to Alignment-1 bytes
	raw := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&raw[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return raw[offset : offset+uintptr(size) : offset+uintptr(size)], nil
}

// Heap allocates from the Go heap.
type Heap struct{}

// NewHeap returns the default heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc implements Allocator.
func (h *Heap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return AllocAligned(size)
}

// Realloc implements Allocator.
func (h *Heap) Realloc(buf []byte, size int) ([]byte, error) {
	if size < len(buf) {
		return nil, fmt.Errorf("%w: cannot shrink %d to %d", ErrInvalidSize, len(buf), size)
	}
	grown, err := AllocAligned(size)
	if err != nil {
		return nil, err
	}
	copy(grown, buf)
	return grown, nil
}

// Free implements Allocator. Heap memory is reclaimed by the garbage collector.
func (h *Heap) Free([]byte) error {
	return nil
}
