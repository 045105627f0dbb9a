package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := MulInt(12, 4)
		require.NoError(t, err)
		assert.Equal(t, 48, got)
	})

	t.Run("zero operand", func(t *testing.T) {
		got, err := MulInt(0, math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := MulInt(math.MaxInt/2+1, 2)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := MulInt(-1, 2)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestIntToUint32(t *testing.T) {
	v, err := IntToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = IntToUint32(-1)
	assert.ErrorIs(t, err, ErrOverflow)

	if big := uint64(math.MaxUint32) + 1; big <= math.MaxInt {
		_, err = IntToUint32(int(big))
		assert.ErrorIs(t, err, ErrOverflow)
	}
}
