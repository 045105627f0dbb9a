package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slotvec/mem"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	assert.Equal(t, a.Uint32s(16), b.Uint32s(16))
	assert.Equal(t, a.Elements(4, 8), b.Elements(4, 8))

	first := a.Intn(1000)
	a.Reset()
	a.Uint32s(16)
	a.Elements(4, 8)
	assert.Equal(t, first, a.Intn(1000))
	assert.Equal(t, int64(7), a.Seed())
}

func TestU32RoundTrip(t *testing.T) {
	assert.Equal(t, []byte{0x2a, 0, 0, 0}, U32(42))
	assert.Equal(t, uint32(0xdeadbeef), DecodeU32(U32(0xdeadbeef)))
}

func TestRecorder(t *testing.T) {
	var r Recorder
	elem := U32(1)

	r.Destroy(elem)
	elem[0] = 9 // recorder keeps its own copy
	r.Print(U32(2))

	assert.Equal(t, 1, r.DestroyCount())
	assert.Equal(t, [][]byte{U32(1)}, r.Destroyed())
	assert.Equal(t, [][]byte{U32(2)}, r.Printed())

	r.Reset()
	assert.Zero(t, r.DestroyCount())
	assert.Empty(t, r.Printed())
}

func TestFailingAllocator(t *testing.T) {
	var a FailingAllocator

	buf, err := a.Alloc(8)
	require.NoError(t, err)

	a.Fail()
	_, err = a.Realloc(buf, 16)
	assert.ErrorIs(t, err, mem.ErrOutOfMemory)
	_, err = a.Alloc(8)
	assert.ErrorIs(t, err, mem.ErrOutOfMemory)

	a.Recover()
	buf, err = a.Realloc(buf, 16)
	require.NoError(t, err)
	require.NoError(t, a.Free(buf))

	allocs, reallocs, frees := a.Counts()
	assert.Equal(t, 1, allocs)
	assert.Equal(t, 1, reallocs)
	assert.Equal(t, 1, frees)
}
