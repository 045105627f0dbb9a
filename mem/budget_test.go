package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slotvec/resource"
)

func TestBudgeted(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 100})
	b := NewBudgeted(nil, rc)
	assert.Same(t, rc, b.Controller())

	buf, err := b.Alloc(40)
	require.NoError(t, err)
	assert.Equal(t, int64(40), rc.MemoryUsage())

	buf, err = b.Realloc(buf, 80)
	require.NoError(t, err)
	assert.Len(t, buf, 80)
	assert.Equal(t, int64(80), rc.MemoryUsage())

	// Only the delta is charged, and the delta does not fit.
	_, err = b.Realloc(buf, 160)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Equal(t, int64(80), rc.MemoryUsage())

	require.NoError(t, b.Free(buf))
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

type brokenAllocator struct{}

func (brokenAllocator) Alloc(int) ([]byte, error)           { return nil, ErrOutOfMemory }
func (brokenAllocator) Realloc([]byte, int) ([]byte, error) { return nil, ErrOutOfMemory }
func (brokenAllocator) Free([]byte) error                   { return errors.New("boom") }

func TestBudgeted_InnerFailureReleases(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 100})
	b := NewBudgeted(brokenAllocator{}, rc)

	_, err := b.Alloc(10)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, int64(0), rc.MemoryUsage())

	_, err = b.Realloc(make([]byte, 4), 10)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, int64(0), rc.MemoryUsage())

	assert.Error(t, b.Free(make([]byte, 4)))
}

func TestBudgeted_Unlimited(t *testing.T) {
	b := NewBudgeted(NewHeap(), nil)

	buf, err := b.Alloc(1 << 16)
	require.NoError(t, err)
	assert.Len(t, buf, 1<<16)
	require.NoError(t, b.Free(buf))
}
