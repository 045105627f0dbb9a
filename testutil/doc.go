// Package testutil provides deterministic inputs and instrumented
// collaborators for tests and benchmarks.
//
//   - RNG: seeded, goroutine-safe random source producing element values
//   - Recorder: counting Destroy/Print callbacks for lifecycle assertions
//   - FailingAllocator: an allocator that starts failing on demand
package testutil
