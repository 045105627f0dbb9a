// Package mem provides the host allocators slot buffers are drawn from.
//
// # Allocator Contract
//
// An Allocator hands out zero-filled byte buffers, grows them while
// preserving their contents, and takes them back. Every method may fail;
// failures wrap ErrOutOfMemory so that callers can tell an exhausted
// allocator apart from a logic error. A failed Realloc leaves the
// original buffer untouched and still owned by the caller.
//
// # Implementations
//
//   - Heap: Go heap, 64-byte aligned (AVX-512 friendly). Free is a no-op.
//   - Mmap: off-heap anonymous mappings, invisible to the garbage collector.
//     Only for pointer-free contents.
//   - Budgeted: wraps another Allocator and charges every byte against a
//     resource.Controller, failing fast once the limit is reached.
package mem
