//go:build unit

package box

import (
	"github.com/gostonefire/lensmap/internal/model"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func labels(b *Box) []string {
	r := make([]string, 0, b.Len())
	for _, record := range b.Records() {
		r = append(r, record.Label)
	}
	return r
}

func TestBox_Set(t *testing.T) {
	t.Run("appends new labels in insertion order", func(t *testing.T) {
		// Prepare
		b := &Box{}

		// Execute
		p1, added1 := b.Set("a", 1)
		p2, added2 := b.Set("b", 2)

		// Check
		assert.True(t, added1, "first label added")
		assert.True(t, added2, "second label added")
		assert.Equal(t, 0, p1, "first label at front")
		assert.Equal(t, 1, p2, "second label at end")
		assert.Equal(t, []string{"a", "b"}, labels(b), "insertion order kept")
	})

	t.Run("updates existing label in place", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)
		_, _ = b.Set("b", 2)

		// Execute
		p, added := b.Set("a", 7)

		// Check
		assert.False(t, added, "no record added")
		assert.Equal(t, 0, p, "position unchanged")
		assert.Equal(t, 2, b.Len(), "length unchanged")
		r, ok := b.Get(0)
		assert.True(t, ok, "record exists")
		assert.Equal(t, model.Record{Label: "a", Value: 7}, r, "value replaced")
	})

	t.Run("compares labels case sensitive", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("ab", 1)

		// Execute
		_, added := b.Set("AB", 2)

		// Check
		assert.True(t, added, "different case is a different label")
		assert.Equal(t, 2, b.Len(), "two records")
	})
}

func TestBox_Remove(t *testing.T) {
	t.Run("removes and closes the gap", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)
		_, _ = b.Set("b", 2)
		_, _ = b.Set("c", 3)

		// Execute
		removed := b.Remove("b")

		// Check
		assert.True(t, removed, "record removed")
		assert.Equal(t, []string{"a", "c"}, labels(b), "remaining order kept")
		assert.Equal(t, -1, b.Find("b"), "label gone")
	})

	t.Run("removing missing label is a no-op", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)

		// Execute
		removed := b.Remove("x")

		// Check
		assert.False(t, removed, "nothing removed")
		assert.Equal(t, 1, b.Len(), "length unchanged")
	})

	t.Run("removing twice is idempotent", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)

		// Execute
		first := b.Remove("a")
		second := b.Remove("a")

		// Check
		assert.True(t, first, "first removal removes")
		assert.False(t, second, "second removal is a no-op")
		assert.Equal(t, 0, b.Len(), "box empty")
	})

	t.Run("remove then set moves label to the end", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)
		_, _ = b.Set("b", 2)

		// Execute
		_ = b.Remove("a")
		p, added := b.Set("a", 3)

		// Check
		assert.True(t, added, "label added again")
		assert.Equal(t, 1, p, "label at the end")
		assert.Equal(t, []string{"b", "a"}, labels(b), "correct order")
	})
}

func TestBox_Get(t *testing.T) {
	t.Run("out of range positions are not ok", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)

		// Execute
		_, okLow := b.Get(-1)
		_, okHigh := b.Get(1)

		// Check
		assert.False(t, okLow, "negative position")
		assert.False(t, okHigh, "position past end")
	})
}

func TestBox_Records(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)

		// Execute
		records := b.Records()
		records[0].Value = 99

		// Check
		r, _ := b.Get(0)
		assert.Equal(t, int64(1), r.Value, "box not modified through copy")
	})
}

func TestBox_Power(t *testing.T) {
	t.Run("weights values by position", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("ot", 7)
		_, _ = b.Set("ab", 5)
		_, _ = b.Set("pc", 6)

		// Execute
		power, ok := b.Power()

		// Check
		assert.True(t, ok, "no overflow")
		assert.Equal(t, int64(7+2*5+3*6), power, "correct power")
	})

	t.Run("empty box has zero power", func(t *testing.T) {
		// Execute
		power, ok := (&Box{}).Power()

		// Check
		assert.True(t, ok, "no overflow")
		assert.Equal(t, int64(0), power, "zero power")
	})

	t.Run("reports overflow", func(t *testing.T) {
		// Prepare
		b := &Box{}
		_, _ = b.Set("a", 1)
		_, _ = b.Set("b", math.MaxInt64)

		// Execute
		_, ok := b.Power()

		// Check
		assert.False(t, ok, "overflow detected")
	})
}
