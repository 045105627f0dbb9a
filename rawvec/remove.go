package rawvec

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/slotvec/internal/conv"
)

// DeleteByKey destroys and removes the first live element matching key,
// compacting the slots after it. It returns ErrNotFound when nothing
// matches; nothing is destroyed in that case.
func (v *Vector) DeleteByKey(key []byte) error {
	if err := v.checkMutable(); err != nil {
		return err
	}

	i, err := v.IndexOf(key)
	if err != nil {
		return err
	}

	v.removeAt(i)
	return nil
}

// DeleteAt destroys and removes the live element at index, compacting the
// slots after it.
func (v *Vector) DeleteAt(index int) error {
	if err := v.checkMutable(); err != nil {
		return err
	}
	if index < 0 || index >= v.length {
		return &IndexError{Index: index, Bound: v.length}
	}

	v.removeAt(index)
	return nil
}

// removeAt runs destroy, zero and compact on live slot i. Relative order of
// the remaining elements is preserved and the vacated tail slot is zeroed.
func (v *Vector) removeAt(i int) {
	v.destroy(i)
	clear(v.slot(i))

	copy(v.span(i, v.length-1), v.span(i+1, v.length))
	clear(v.slot(v.length - 1))

	v.length--
	v.gen++
}

// DeleteIndices destroys and removes the live elements at the given
// indices in a single compaction pass. Duplicate indices count once. If any
// index is out of range nothing is removed.
func (v *Vector) DeleteIndices(indices ...int) error {
	if err := v.checkMutable(); err != nil {
		return err
	}

	set := roaring.New()
	for _, i := range indices {
		if i < 0 || i >= v.length {
			return &IndexError{Index: i, Bound: v.length}
		}
		u, err := conv.IntToUint32(i)
		if err != nil {
			return &IndexError{Index: i, Bound: v.length}
		}
		set.Add(u)
	}
	if set.IsEmpty() {
		return nil
	}

	v.compact(func(i int) bool {
		return set.Contains(uint32(i)) //nolint:gosec // i < length, checked above
	})
	return nil
}

// DeleteFunc destroys and removes every live element for which match
// returns true, preserving the order of the rest. It returns the number of
// elements removed. match must not mutate the vector.
func (v *Vector) DeleteFunc(match func(elem []byte) bool) (int, error) {
	if err := v.checkMutable(); err != nil {
		return 0, err
	}
	if match == nil {
		return 0, &ConfigError{Field: "match func", Reason: "is required"}
	}

	return v.compact(func(i int) bool {
		defer v.enterCallback()()
		return match(v.slot(i))
	}), nil
}

// compact destroys the live elements selected by remove and moves the
// survivors down in slot order. Vacated tail slots are zeroed.
func (v *Vector) compact(remove func(i int) bool) int {
	w := 0
	for r := 0; r < v.length; r++ {
		if remove(r) {
			v.destroy(r)
			continue
		}
		if w != r {
			copy(v.slot(w), v.slot(r))
		}
		w++
	}

	n := v.length - w
	if n > 0 {
		clear(v.span(w, v.length))
		v.length = w
		v.gen++
	}
	return n
}

// Clear sets Len to 0.
//
// WARNING: Clear does not call Destroy and does not zero the dropped
// elements. Anything they own leaks. Use Reset to release them.
func (v *Vector) Clear() error {
	if err := v.checkMutable(); err != nil {
		return err
	}

	v.length = 0
	v.gen++
	return nil
}

// Reset destroys every live element in slot order, zero-fills their slots
// and sets Len to 0. Capacity is kept.
func (v *Vector) Reset() error {
	if err := v.checkMutable(); err != nil {
		return err
	}

	for i := 0; i < v.length; i++ {
		v.destroy(i)
	}
	clear(v.span(0, v.length))

	v.length = 0
	v.gen++
	return nil
}
