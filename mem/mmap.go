package mem

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/slotvec/internal/mmap"
)

// Mmap allocates off-heap buffers from anonymous memory mappings.
//
// Buffers must hold plain bytes only: the garbage collector does not scan
// them, so Go pointers stored inside would not keep their targets alive.
type Mmap struct {
	mu       sync.Mutex
	mappings map[*byte]*mmap.Mapping
	release  func(*mmap.Mapping) error
}

// NewMmap creates an off-heap allocator.
func NewMmap() *Mmap {
	return &Mmap{
		mappings: make(map[*byte]*mmap.Mapping),
		release:  (*mmap.Mapping).Close,
	}
}

// Alloc implements Allocator.
func (a *Mmap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return nil, nil
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	data := m.Bytes()

	a.mu.Lock()
	a.mappings[unsafe.SliceData(data)] = m
	a.mu.Unlock()

	return data, nil
}

// Realloc implements Allocator.
func (a *Mmap) Realloc(buf []byte, size int) ([]byte, error) {
	if size < len(buf) {
		return nil, fmt.Errorf("%w: cannot shrink %d to %d", ErrInvalidSize, len(buf), size)
	}
	if len(buf) == 0 {
		return a.Alloc(size)
	}
	if !a.owns(buf) {
		return nil, ErrUnknownBuffer
	}

	grown, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(grown, buf)

	// On failure buf stays registered and valid.
	if err := a.Free(buf); err != nil {
		if ferr := a.Free(grown); ferr != nil {
			err = errors.Join(err, ferr)
		}
		return nil, fmt.Errorf("mmap: release old mapping: %w", err)
	}
	return grown, nil
}

// Free implements Allocator. The mapping is forgotten only once it has
// been unmapped.
func (a *Mmap) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	key := unsafe.SliceData(buf)

	a.mu.Lock()
	m, ok := a.mappings[key]
	a.mu.Unlock()

	if !ok {
		return ErrUnknownBuffer
	}
	if err := a.release(m); err != nil {
		return err
	}

	a.mu.Lock()
	delete(a.mappings, key)
	a.mu.Unlock()
	return nil
}

// Live returns the number of mappings currently held.
func (a *Mmap) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mappings)
}

func (a *Mmap) owns(buf []byte) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.mappings[unsafe.SliceData(buf)]
	return ok
}
