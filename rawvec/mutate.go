package rawvec

import (
	"bytes"
	"fmt"
)

// Push appends a copy of elem, growing the buffer when the vector is full.
func (v *Vector) Push(elem []byte) (Ref, error) {
	if err := v.checkMutable(); err != nil {
		return Ref{}, err
	}
	if err := v.checkElem(elem); err != nil {
		return Ref{}, err
	}

	i, elem, err := v.reserve(elem)
	if err != nil {
		return Ref{}, err
	}

	copy(v.slot(i), elem)
	v.length++

	return v.ref(i), nil
}

// Emplace reserves the next slot and builds the element in it with the
// Construct callback. The slot handed to Construct is always zero-filled,
// even when Clear left stale bytes behind. If Construct fails the slot is
// zeroed again, Len is unchanged and the error is returned.
func (v *Vector) Emplace(args any) (Ref, error) {
	if err := v.checkMutable(); err != nil {
		return Ref{}, err
	}
	if v.cb.Construct == nil {
		return Ref{}, &ConfigError{Field: "construct callback", Reason: "is not set"}
	}

	i, _, err := v.reserve(nil)
	if err != nil {
		return Ref{}, err
	}

	clear(v.slot(i))
	if err := v.construct(i, args); err != nil {
		clear(v.slot(i))
		return Ref{}, fmt.Errorf("rawvec: construct: %w", err)
	}
	v.length++

	return v.ref(i), nil
}

// InsertAt writes elem into slot index, overwriting whatever is there.
//
// The buffer grows until index < Cap. Occupants are not shifted, Len is
// not changed and the previous occupant is not destroyed: this is a raw
// slot write for indices the caller already manages.
func (v *Vector) InsertAt(elem []byte, index int) error {
	if err := v.checkMutable(); err != nil {
		return err
	}
	if err := v.checkElem(elem); err != nil {
		return err
	}
	if index < 0 || index >= v.maxCapacity {
		return &IndexError{Index: index, Bound: v.maxCapacity}
	}

	if index >= v.capacity {
		elem = bytes.Clone(elem)
		if err := v.ensure(index + 1); err != nil {
			return err
		}
	}

	copy(v.slot(index), elem)
	return nil
}

// Replace destroys the live element at index and stores elem in its place.
func (v *Vector) Replace(index int, elem []byte) error {
	if err := v.checkMutable(); err != nil {
		return err
	}
	if err := v.checkElem(elem); err != nil {
		return err
	}
	if index < 0 || index >= v.length {
		return &IndexError{Index: index, Bound: v.length}
	}

	// elem may alias the slot being replaced.
	elem = bytes.Clone(elem)

	v.destroy(index)
	copy(v.slot(index), elem)
	return nil
}

// InsertShift inserts elem at index, shifting [index, Len) up by one slot.
// index may equal Len, which appends.
func (v *Vector) InsertShift(index int, elem []byte) error {
	if err := v.checkMutable(); err != nil {
		return err
	}
	if err := v.checkElem(elem); err != nil {
		return err
	}
	if index < 0 || index > v.length {
		return &IndexError{Index: index, Bound: v.length + 1}
	}

	// The shift below may overwrite the source if it aliases live slots.
	elem = bytes.Clone(elem)

	if _, _, err := v.reserve(nil); err != nil {
		return err
	}

	copy(v.span(index+1, v.length+1), v.span(index, v.length))
	copy(v.slot(index), elem)
	v.length++
	v.gen++

	return nil
}
