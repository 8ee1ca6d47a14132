package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRejection(t *testing.T) {
	t.Run("Wrapped move errors are rejections", func(t *testing.T) {
		for _, err := range []error{ErrGameFinished, ErrCellOccupied, ErrInvalidCell} {
			// Given: a move error wrapped by an upper layer
			wrapped := fmt.Errorf("failed to apply move: %w", err)

			// Then: it is still classified as a rejection
			assert.True(t, IsRejection(wrapped), err.Error())
		}
	})

	t.Run("Other errors are not rejections", func(t *testing.T) {
		assert.False(t, IsRejection(nil))
		assert.False(t, IsRejection(ErrOutOfRange))
		assert.False(t, IsRejection(errors.New("redis down")))
	})
}
