// Package rawvec implements a type-erased, growable, contiguous slot vector.
//
// A Vector stores elements of a fixed byte width in one contiguous buffer
// drawn from a mem.Allocator. The engine never interprets element bytes;
// behaviour that depends on element meaning is supplied once at
// construction as Callbacks:
//
//	v, err := rawvec.New(4, rawvec.Callbacks{
//	    Destroy: func(elem []byte) {},
//	    Print:   func(elem []byte) { fmt.Println(binary.LittleEndian.Uint32(elem)) },
//	}, rawvec.WithCapacity(2))
//
// # Layout
//
// Slots [0, Len) are live, slots [Len, Cap) are free and zero-filled.
// Capacity doubles when a push finds the vector full and never shrinks.
// A bounded capacity counter (WithMaxCapacity) saturates instead of
// wrapping; a vector full at its maximum rejects further growth with
// ErrCapacityExhausted and stays unchanged.
//
// # References
//
// Push, Emplace, Find and GetAt return a Ref rather than a raw slice. A
// Ref is an index plus the vector generation at the time it was taken.
// Growth, compaction, Clear, Reset and Free advance the generation, after
// which older refs report Valid() == false and Bytes() == nil.
//
// # Element Lifecycle
//
// Destroy runs exactly once for every element that leaves the vector
// through DeleteAt, DeleteByKey, DeleteIndices, DeleteFunc, Replace, Reset
// or Free.
//
// Clear is the exception: it drops every live element WITHOUT calling
// Destroy and without zeroing their bytes. Elements that own external
// resources leak through Clear; use Reset when they must be released.
//
// InsertAt is a raw slot overwrite. It never shifts occupants, never
// changes Len and never destroys the previous occupant. Use Replace for a
// destructing overwrite and InsertShift for an order-preserving insert.
//
// # Concurrency
//
// A Vector is not safe for concurrent use; serialize access externally.
// Callbacks must not mutate the vector they are invoked from; such calls
// fail with ErrReentrantCall.
package rawvec
