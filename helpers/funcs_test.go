package helpers

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStats(t *testing.T) {
	numbers := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.Equal(t, 40.0, Sum(numbers))
	assert.Equal(t, 5.0, Mean(numbers))
	assert.InDelta(t, 2.138089935, StdDev(numbers, 5), 1e-9)
	assert.Equal(t, 4.5, Median(numbers))
	assert.Equal(t, 4.0, Median([]float64{9, 1, 4}))

	min, max := MinMax(numbers)
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 9.0, max)
}

func TestStatsEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 0.0, StdDev([]float64{3}, 3))
	assert.True(t, AllValuesNonNegative([]float64{0, 1}))
	assert.False(t, AllValuesNonNegative([]float64{0, -0.1}))
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	numbers := []float64{3, 1, 2}
	Median(numbers)
	assert.Equal(t, []float64{3, 1, 2}, numbers)
}
