package slotvec

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithName("ids").
		WithElemSize(4)

	l.LogGrow(2, 4, 3)
	l.LogAllocFailure("push", 4, errors.New("out of memory"))
	l.LogClose(3, nil)

	out := buf.String()
	assert.Contains(t, out, "vector=ids")
	assert.Contains(t, out, "elem_size=4")
	assert.Contains(t, out, "old_capacity=2")
	assert.Contains(t, out, "new_capacity=4")
	assert.Contains(t, out, `msg="allocation failed"`)
	assert.Contains(t, out, "op=push")
	assert.Contains(t, out, `msg="vector closed"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestNewLoggerDefault(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, l.Enabled(t.Context(), slog.LevelDebug))
}
