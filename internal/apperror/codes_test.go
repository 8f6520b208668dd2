package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	// Given: wrapped sentinels
	wrapped := fmt.Errorf("failed to join game: %w", ErrGameFull)

	// Then: the code follows the sentinel through the wrap
	assert.Equal(t, CodeGameFull, Code(wrapped))
	assert.Equal(t, CodeNotYourTurn, Code(ErrNotYourTurn))
	assert.Equal(t, CodeNotFound, Code(ErrGameNotFound))
	assert.Equal(t, CodeInvalidRequest, Code(ErrInvalidMove))

	// And: anything else is a write failure
	assert.Equal(t, CodeWriteFailed, Code(errors.New("connection reset")))
}

func TestFromCode(t *testing.T) {
	// Then: codes map back onto sentinels that produce the same code
	for _, code := range []string{CodeGameFull, CodeNotYourTurn, CodeAlreadyJoined, CodeUnauthorized, CodeNotFound} {
		err := FromCode(code)

		assert.Error(t, err, code)
		assert.Equal(t, code, Code(err))
	}

	assert.ErrorIs(t, FromCode(CodeInvalidRequest), ErrInvalidInput)
	assert.NoError(t, FromCode(CodeWriteFailed))
	assert.NoError(t, FromCode("made_up"))
}
