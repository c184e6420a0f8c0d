//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestSplitNonEmpty(t *testing.T) {
	t.Run("splits on separator", func(t *testing.T) {
		// Execute
		parts := SplitNonEmpty("rn=1,cm-,qp=3", ",")

		// Check
		assert.Equal(t, []string{"rn=1", "cm-", "qp=3"}, parts, "correct parts")
	})

	t.Run("drops empty parts", func(t *testing.T) {
		// Execute
		parts := SplitNonEmpty(",rn=1,,cm-,", ",")

		// Check
		assert.Equal(t, []string{"rn=1", "cm-"}, parts, "empty parts dropped")
	})

	t.Run("empty string gives no parts", func(t *testing.T) {
		// Execute
		parts := SplitNonEmpty("", ",")

		// Check
		assert.Empty(t, parts, "no parts")
	})
}

func TestTrimLineEnding(t *testing.T) {
	t.Run("trims line endings", func(t *testing.T) {
		// Prepare
		input := []string{"abc\n", "abc\r\n", "abc", "a\nbc\n"}
		expected := []string{"abc", "abc", "abc", "a\nbc"}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equal(t, expected[i], TrimLineEnding(input[i]), "line ending trimmed")
		}
	})
}

func TestAddInt64(t *testing.T) {
	t.Run("adds within range", func(t *testing.T) {
		// Execute
		sum, ok := AddInt64(40, 2)

		// Check
		assert.True(t, ok, "within range")
		assert.Equal(t, int64(42), sum, "correct sum")
	})

	t.Run("detects overflow", func(t *testing.T) {
		// Execute
		_, okHigh := AddInt64(math.MaxInt64, 1)
		_, okLow := AddInt64(math.MinInt64, -1)

		// Check
		assert.False(t, okHigh, "overflow detected")
		assert.False(t, okLow, "underflow detected")
	})

	t.Run("handles limits exactly", func(t *testing.T) {
		// Execute
		sum, ok := AddInt64(math.MaxInt64-1, 1)

		// Check
		assert.True(t, ok, "within range")
		assert.Equal(t, int64(math.MaxInt64), sum, "correct sum")
	})
}

func TestMulInt64(t *testing.T) {
	t.Run("multiplies within range", func(t *testing.T) {
		// Execute
		product, ok := MulInt64(-6, 7)

		// Check
		assert.True(t, ok, "within range")
		assert.Equal(t, int64(-42), product, "correct product")
	})

	t.Run("multiplies by zero", func(t *testing.T) {
		// Execute
		product, ok := MulInt64(math.MaxInt64, 0)

		// Check
		assert.True(t, ok, "within range")
		assert.Equal(t, int64(0), product, "correct product")
	})

	t.Run("detects overflow", func(t *testing.T) {
		// Execute
		_, ok1 := MulInt64(math.MaxInt64/2+1, 2)
		_, ok2 := MulInt64(math.MinInt64, -1)
		_, ok3 := MulInt64(-1, math.MinInt64)

		// Check
		assert.False(t, ok1, "overflow detected")
		assert.False(t, ok2, "overflow detected")
		assert.False(t, ok3, "overflow detected")
	})
}
