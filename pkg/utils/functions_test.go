package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	t.Run("SucceedsOnFirstAttempt", func(t *testing.T) {
		calls := 0
		err := Retry(func() error {
			calls++
			return nil
		}, 3)
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("SucceedsAfterFailures", func(t *testing.T) {
		calls := 0
		err := Retry(func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("ainda não")
			}
			return nil
		}, 5)
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		calls := 0
		err := Retry(func() error {
			calls++
			return fmt.Errorf("sempre falha")
		}, 4)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "falha após 4 tentativas")
		assert.Equal(t, 4, calls)
	})
}
