package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when an arithmetic result does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// MulInt returns a*b for non-negative operands.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: %d * %d (negative operand)", ErrOverflow, a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

// IntToInt64 converts int to int64. Always safe on supported platforms,
// kept for symmetry with the accounting APIs that take int64.
func IntToInt64(v int) int64 {
	return int64(v)
}

// IntToUint32 converts int to uint32, failing for values outside
// [0, math.MaxUint32].
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit in uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}
