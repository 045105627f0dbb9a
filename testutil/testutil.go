package testutil

import (
	"encoding/binary"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32s returns n pseudo-random uint32 values.
func (r *RNG) Uint32s(n int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.rand.Uint32()
	}
	return out
}

// Elements returns n pseudo-random elements of size bytes each.
func (r *RNG) Elements(n, size int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, size)
		r.rand.Read(out[i])
	}
	return out
}

// U32 encodes v as a 4-byte little-endian element.
func U32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// DecodeU32 decodes a 4-byte little-endian element.
func DecodeU32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// Recorder captures copies of the elements handed to Destroy and Print
// callbacks, in call order.
type Recorder struct {
	mu        sync.Mutex
	destroyed [][]byte
	printed   [][]byte
}

// Destroy records elem. Use it as a Destroy callback.
func (r *Recorder) Destroy(elem []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = append(r.destroyed, append([]byte(nil), elem...))
}

// Print records elem. Use it as a Print callback.
func (r *Recorder) Print(elem []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printed = append(r.printed, append([]byte(nil), elem...))
}

// Destroyed returns the destroyed elements in call order.
func (r *Recorder) Destroyed() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.destroyed...)
}

// DestroyCount returns the number of Destroy calls.
func (r *Recorder) DestroyCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.destroyed)
}

// Printed returns the printed elements in call order.
func (r *Recorder) Printed() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.printed...)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = nil
	r.printed = nil
}
