package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConfig, "Something failed", "Try this instead")

	out := err.Error()
	assert.Contains(t, out, "✗ Something failed")
	assert.Contains(t, out, "Try this instead")
}

func TestErrorFormattingWithCause(t *testing.T) {
	cause := stderrors.New("underlying problem")
	err := WrapWithSuggestion(cause, ErrProvider, "Read failed", "Check permissions")

	out := err.Error()
	assert.Contains(t, out, "✗ Read failed")
	assert.Contains(t, out, "underlying problem")
	assert.Contains(t, out, "Check permissions")
}

func TestErrorWithoutSuggestion(t *testing.T) {
	err := Wrap(stderrors.New("boom"), ErrRender, "Draw failed")

	out := err.Error()
	assert.Contains(t, out, "✗ Draw failed")
	assert.Contains(t, out, "boom")
	assert.Empty(t, err.Suggestion)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(cause, ErrProvider, "wrapped")

	assert.True(t, stderrors.Is(err, cause))

	var verr *Error
	require.True(t, stderrors.As(err, &verr))
	assert.Equal(t, ErrProvider, verr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "bad config", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrProvider))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(stderrors.New("plain"), ErrConfig))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := New(ErrProvider, "device gone", "")
	outer := fmt.Errorf("sampling: %w", inner)

	assert.True(t, IsCode(outer, ErrProvider))
}
