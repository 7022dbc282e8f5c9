package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferRecordsAllLevels(t *testing.T) {
	buf := NewBuffer()

	buf.Debug("debug %d", 1)
	buf.Info("info")
	buf.Warn("warn")
	buf.Error("error")

	require.Len(t, buf.Messages, 4)
	assert.Equal(t, Message{Level: "debug", Text: "debug 1"}, buf.Messages[0])
	assert.True(t, buf.HasLevel("debug"))
	assert.True(t, buf.HasLevel("error"))
	assert.False(t, buf.HasLevel("fatal"))
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer()
	buf.Info("one")
	require.Len(t, buf.Messages, 1)

	buf.Clear()
	assert.Empty(t, buf.Messages)
	assert.False(t, buf.HasLevel("info"))
}

func TestNoopDiscards(t *testing.T) {
	// Must not panic; output is intentionally unobservable.
	l := Noop()
	l.Debug("a %s", "b")
	l.Info("a")
	l.Warn("a")
	l.Error("a")
}

func TestEnvLoggerImplementsInterface(t *testing.T) {
	var _ Logger = NewEnvLogger("[test]")
}
