package rawvec

// Ref identifies one slot of a Vector as of a given generation.
//
// The zero Ref is never valid.
type Ref struct {
	v     *Vector
	index int
	gen   uint64
}

func (v *Vector) ref(i int) Ref {
	return Ref{v: v, index: i, gen: v.gen}
}

// Index returns the slot index the ref points to.
func (r Ref) Index() int {
	return r.index
}

// Valid reports whether the ref still addresses its original slot, i.e.
// the vector has not grown, compacted, been cleared, reset or freed since
// the ref was taken.
func (r Ref) Valid() bool {
	return r.v != nil && !r.v.freed && r.gen == r.v.gen && r.index < r.v.capacity
}

// Bytes returns a view of the slot, or nil if the ref is stale.
// The view must not be retained across a mutating call.
func (r Ref) Bytes() []byte {
	if !r.Valid() {
		return nil
	}
	return r.v.slot(r.index)
}
