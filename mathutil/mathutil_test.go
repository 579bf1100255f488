package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
	assert.Equal(t, 3, ClampInt(7, 1, 3))
	assert.Equal(t, 1, ClampInt(-2, 1, 3))
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 0.0, Approach(0.1, 0.5))
	assert.Equal(t, 0.5, Approach(1, 0.5))
	assert.Equal(t, -0.5, Approach(-1, 0.5))
}

func TestCircleHit(t *testing.T) {
	assert.True(t, CircleHit(0, 0, 5, 10, 0, 5), "touching circles overlap")
	assert.False(t, CircleHit(0, 0, 5, 10.1, 0, 5))
	assert.True(t, CircleHit(3, 4, 1, 3, 4, 1))
}

func TestPickBand(t *testing.T) {
	weights := []float64{0.5, 0, 0.25, 0.25}

	tests := []struct {
		roll float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 2},
		{0.74, 2},
		{0.75, 3},
		{0.999, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PickBand(tt.roll, weights), "roll %v", tt.roll)
	}
	assert.Equal(t, -1, PickBand(0.3, []float64{0, 0}))
}

func TestRNGRangeAndSeed(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		v := a.Range(2, 3)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 3.0)
		assert.Equal(t, v, b.Range(2, 3))
	}
}
