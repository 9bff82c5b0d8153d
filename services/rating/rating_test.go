package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	t.Run("EmptySet", func(t *testing.T) {
		mean, count := Recompute(nil)
		assert.Equal(t, 0.0, mean)
		assert.Equal(t, 0, count)
	})

	t.Run("SingleValue", func(t *testing.T) {
		mean, count := Recompute([]float64{4})
		assert.Equal(t, 4.0, mean)
		assert.Equal(t, 1, count)
	})

	t.Run("MeanOfPool", func(t *testing.T) {
		mean, count := Recompute([]float64{5, 4, 3})
		assert.InDelta(t, 4.0, mean, 1e-9)
		assert.Equal(t, 3, count)
	})

	t.Run("FractionalMean", func(t *testing.T) {
		mean, count := Recompute([]float64{5, 4})
		assert.InDelta(t, 4.5, mean, 1e-9)
		assert.Equal(t, 2, count)
	})
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(1))
	assert.True(t, Valid(3.5))
	assert.True(t, Valid(5))

	assert.False(t, Valid(0))
	assert.False(t, Valid(0.5))
	assert.False(t, Valid(6))
	assert.False(t, Valid(-2))
}
