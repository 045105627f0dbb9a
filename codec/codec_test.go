package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	Tag  [4]byte
	Ok   bool
}

func TestBinary_Size(t *testing.T) {
	assert.Equal(t, 4, MustBinary[uint32]().Size())
	assert.Equal(t, 8, MustBinary[float64]().Size())
	assert.Equal(t, 13, MustBinary[point]().Size())
	assert.Equal(t, "binary", MustBinary[uint8]().Name())
}

func TestBinary_RejectsVariableSize(t *testing.T) {
	_, err := NewBinary[int]()
	assert.ErrorIs(t, err, ErrVariableSize)

	_, err = NewBinary[string]()
	assert.ErrorIs(t, err, ErrVariableSize)

	_, err = NewBinary[[]byte]()
	assert.ErrorIs(t, err, ErrVariableSize)

	_, err = NewBinary[struct{}]()
	assert.ErrorIs(t, err, ErrVariableSize)

	assert.Panics(t, func() { MustBinary[map[string]int]() })
}

func TestBinary_Struct(t *testing.T) {
	c := MustBinary[point]()
	in := point{X: -3, Y: 7, Tag: [4]byte{'a', 'b', 'c', 'd'}, Ok: true}

	buf := make([]byte, c.Size())
	require.NoError(t, c.Encode(buf, in))

	out, err := c.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestBinary_ByteOrder(t *testing.T) {
	le := MustBinary[uint32]()
	be, err := NewBinaryOrder[uint32](binary.BigEndian)
	require.NoError(t, err)

	buf := make([]byte, 4)
	require.NoError(t, le.Encode(buf, 1))
	assert.Equal(t, []byte{1, 0, 0, 0}, buf)

	require.NoError(t, be.Encode(buf, 1))
	assert.Equal(t, []byte{0, 0, 0, 1}, buf)
}

func TestBinary_SizeMismatch(t *testing.T) {
	c := MustBinary[uint32]()

	assert.ErrorIs(t, c.Encode(make([]byte, 3), 1), ErrSizeMismatch)

	_, err := c.Decode(make([]byte, 5))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
