package rawvec

import (
	"bytes"
	"iter"
)

// Find returns a ref to the first live element matching key, in slot
// order. It returns ErrNotFound when nothing matches.
func (v *Vector) Find(key []byte) (Ref, error) {
	i, err := v.IndexOf(key)
	if err != nil {
		return Ref{}, err
	}
	return v.ref(i), nil
}

// IndexOf returns the index of the first live element matching key.
//
// Matching uses the Equal callback, or byte equality when none is set.
func (v *Vector) IndexOf(key []byte) (int, error) {
	if err := v.check(); err != nil {
		return -1, err
	}
	if key == nil {
		return -1, ErrInvalidElement
	}

	for i := 0; i < v.length; i++ {
		if v.matches(i, key) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// GetAt returns a ref to the live element at index.
func (v *Vector) GetAt(index int) (Ref, error) {
	if err := v.check(); err != nil {
		return Ref{}, err
	}
	if index < 0 || index >= v.length {
		return Ref{}, &IndexError{Index: index, Bound: v.length}
	}
	return v.ref(index), nil
}

// Print invokes the Print callback on every live element in slot order.
func (v *Vector) Print() error {
	if err := v.check(); err != nil {
		return err
	}
	for i := 0; i < v.length; i++ {
		v.print(i)
	}
	return nil
}

// All iterates over the live elements in slot order. Each yielded slice is
// a view valid until the next iteration step. Mutating the vector while
// iterating stops the iteration.
func (v *Vector) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		if v.check() != nil {
			return
		}
		gen := v.gen
		for i := 0; i < v.length; i++ {
			if !yield(i, v.slot(i)) {
				return
			}
			if v.freed || v.gen != gen {
				return
			}
		}
	}
}

func (v *Vector) matches(i int, key []byte) bool {
	if v.cb.Equal == nil {
		return bytes.Equal(v.slot(i), key)
	}
	defer v.enterCallback()()
	return v.cb.Equal(v.slot(i), key)
}
