package rawvec

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/slotvec/internal/conv"
)

// nextCapacity returns the capacity after one doubling step, saturating
// at maxCapacity.
func (v *Vector) nextCapacity(capacity int) int {
	if capacity == 0 {
		return min(1, v.maxCapacity)
	}
	if capacity > v.maxCapacity/2 {
		return v.maxCapacity
	}
	return capacity * 2
}

// capacityFor returns the capacity reached by repeated doubling until at
// least need slots exist.
func (v *Vector) capacityFor(need int) (int, error) {
	if need > v.maxCapacity {
		return 0, ErrCapacityExhausted
	}
	capacity := v.capacity
	for capacity < need {
		capacity = v.nextCapacity(capacity)
	}
	return capacity, nil
}

// growTo reallocates the buffer to hold capacity slots. Existing bytes are
// preserved and the new suffix is zero-filled. On failure nothing changes.
func (v *Vector) growTo(capacity int) error {
	if capacity <= v.capacity {
		return nil
	}

	size, err := conv.MulInt(capacity, v.elemSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	oldSize := len(v.data)
	data, err := v.alloc.Realloc(v.data, size)
	if err != nil {
		return fmt.Errorf("%w: grow %d -> %d slots: %w", ErrAllocationFailed, v.capacity, capacity, err)
	}
	clear(data[oldSize:])

	v.data = data
	v.capacity = capacity
	v.gen++
	return nil
}

// ensure makes room for at least need slots.
func (v *Vector) ensure(need int) error {
	if need <= v.capacity {
		return nil
	}
	capacity, err := v.capacityFor(need)
	if err != nil {
		return err
	}
	return v.growTo(capacity)
}

// reserve returns the index of the next free slot, growing if needed.
// elem is copied out of the buffer first when growth might relocate it.
func (v *Vector) reserve(elem []byte) (int, []byte, error) {
	if v.length == v.capacity {
		if elem != nil {
			elem = bytes.Clone(elem)
		}
		if err := v.ensure(v.length + 1); err != nil {
			return 0, nil, err
		}
	}
	return v.length, elem, nil
}
