// Package resource implements a memory budget for slot buffers.
//
// A Controller tracks how many bytes the vectors that share it currently
// hold and, when a hard limit is configured, refuses reservations that
// would exceed it. Reservation is non-blocking and fail-fast so that a
// refused growth surfaces immediately as an allocation failure instead
// of stalling the caller:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(4096)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one controller
// may be shared by vectors owned by different goroutines.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
