// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// MapAnon returns a zero-filled, read-write region obtained directly from
// the operating system. The Go garbage collector never scans or moves it,
// which makes it a suitable backing store for large slot buffers holding
// plain (pointer-free) bytes.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure
// no goroutine touches Bytes() after Close() returns.
package mmap
