package mem

import (
	"fmt"

	"github.com/hupe1980/slotvec/internal/conv"
	"github.com/hupe1980/slotvec/resource"
)

// Budgeted charges every allocation against a resource.Controller.
type Budgeted struct {
	inner Allocator
	rc    *resource.Controller
}

// NewBudgeted wraps inner. A nil inner allocator defaults to the heap.
func NewBudgeted(inner Allocator, rc *resource.Controller) *Budgeted {
	if inner == nil {
		inner = NewHeap()
	}
	return &Budgeted{inner: inner, rc: rc}
}

// Controller returns the controller the allocator charges.
func (b *Budgeted) Controller() *resource.Controller {
	return b.rc
}

// Alloc implements Allocator.
func (b *Budgeted) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	n := conv.IntToInt64(size)
	if err := b.rc.AcquireMemory(n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	buf, err := b.inner.Alloc(size)
	if err != nil {
		b.rc.ReleaseMemory(n)
		return nil, err
	}
	return buf, nil
}

// Realloc implements Allocator. Only the growth delta is charged.
func (b *Budgeted) Realloc(buf []byte, size int) ([]byte, error) {
	if size < len(buf) {
		return nil, fmt.Errorf("%w: cannot shrink %d to %d", ErrInvalidSize, len(buf), size)
	}
	delta := conv.IntToInt64(size - len(buf))
	if err := b.rc.AcquireMemory(delta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	grown, err := b.inner.Realloc(buf, size)
	if err != nil {
		b.rc.ReleaseMemory(delta)
		return nil, err
	}
	return grown, nil
}

// Free implements Allocator.
func (b *Budgeted) Free(buf []byte) error {
	if err := b.inner.Free(buf); err != nil {
		return err
	}
	b.rc.ReleaseMemory(conv.IntToInt64(len(buf)))
	return nil
}
