package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeysIgnoreOrder(t *testing.T) {
	t.Run("SameOrder", func(t *testing.T) {
		match := MatchKeysIgnoreOrder([]string{"a", "b", "c"})
		assert.True(t, match([]string{"a", "b", "c"}))
	})

	t.Run("DifferentOrder", func(t *testing.T) {
		match := MatchKeysIgnoreOrder([]string{"a", "b", "c"})
		assert.True(t, match([]string{"c", "a", "b"}))
	})

	t.Run("DifferentLength", func(t *testing.T) {
		match := MatchKeysIgnoreOrder([]string{"a", "b"})
		assert.False(t, match([]string{"a"}))
	})

	t.Run("DifferentKeys", func(t *testing.T) {
		match := MatchKeysIgnoreOrder([]string{"a", "b"})
		assert.False(t, match([]string{"a", "x"}))
	})
}
