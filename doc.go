// Package slotvec provides a growable, contiguous vector of fixed-size
// values with caller-supplied element behaviour.
//
// Values are stored by value in one buffer of equally sized slots. How a
// value is compared, released and rendered is configured once, at
// construction, and then applied uniformly by every operation.
//
// # Quick Start
//
//	v, err := slotvec.New(slotvec.Config[uint32]{
//		Destroy: func(uint32) {},
//		Print:   func(x uint32) { fmt.Println(x) },
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer v.Close()
//
//	v.Push(10)
//	v.Push(20)
//	x, err := v.Find(20)
//
// # Element Encoding
//
// A Vector[T] keeps each value in its slot form, produced by a
// codec.Codec[T]. The default codec (codec.NewBinary) accepts any
// fixed-size type encoding/binary understands: integers, floats, bools,
// and arrays or structs of those. Types with pointers, slices, strings or
// maps need a custom codec that maps them to a fixed number of bytes, for
// example a handle into a side table.
//
// # Element Lifecycle
//
// Destroy runs exactly once for every element removed by DeleteAt,
// DeleteKey, DeleteIndices, DeleteFunc, Replace, Reset or Close. Clear
// does NOT run Destroy; it only forgets the elements. Prefer Reset unless
// the caller has already released what the elements own.
//
// InsertAt overwrites a slot without shifting, counting or destroying.
// Replace and InsertShift are the managed alternatives.
//
// # Lookup
//
// Find and IndexOf return the first element in slot order for which the
// Equal callback reports a match. Without Equal, values match when their
// encodings are identical. A miss is reported as ErrNotFound.
//
// # Memory
//
// The slot buffer comes from a mem.Allocator (WithAllocator). mem.Heap is
// the default; mem.Mmap keeps the buffer off the Go heap and mem.Budgeted
// enforces a byte limit through a resource.Controller. Growth doubles the
// capacity and saturates at WithMaxCapacity; a full vector at its maximum
// rejects insertions with ErrCapacityExhausted and stays intact.
//
// # Observability
//
// WithLogger wires a structured slog-based Logger and
// WithMetricsCollector a MetricsCollector. See metrics/prommetrics for a
// Prometheus collector.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Callbacks must not mutate the
// vector that invoked them; such calls return ErrReentrantCall.
//
// For the untyped engine, see package rawvec.
package slotvec
