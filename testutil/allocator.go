package testutil

import (
	"sync"

	"github.com/hupe1980/slotvec/mem"
)

// FailingAllocator delegates to the heap until Fail is called, after
// which Alloc and Realloc return mem.ErrOutOfMemory.
type FailingAllocator struct {
	mu       sync.Mutex
	heap     mem.Heap
	failing  bool
	allocs   int
	reallocs int
	frees    int
}

// Fail makes every subsequent Alloc and Realloc fail.
func (a *FailingAllocator) Fail() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing = true
}

// Recover undoes Fail.
func (a *FailingAllocator) Recover() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing = false
}

// Alloc implements mem.Allocator.
func (a *FailingAllocator) Alloc(size int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failing {
		return nil, mem.ErrOutOfMemory
	}
	a.allocs++
	return a.heap.Alloc(size)
}

// Realloc implements mem.Allocator.
func (a *FailingAllocator) Realloc(buf []byte, size int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failing {
		return nil, mem.ErrOutOfMemory
	}
	a.reallocs++
	return a.heap.Realloc(buf, size)
}

// Free implements mem.Allocator.
func (a *FailingAllocator) Free(buf []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frees++
	return a.heap.Free(buf)
}

// Counts returns how many Alloc, Realloc and Free calls succeeded.
func (a *FailingAllocator) Counts() (allocs, reallocs, frees int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs, a.reallocs, a.frees
}
