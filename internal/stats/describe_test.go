package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanVariance(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)

	assert.True(t, math.IsNaN(Variance([]float64{3})))
	assert.InDelta(t, 1.6666666667, Variance([]float64{1, 2, 3, 4}), 1e-9)
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "perfect positive", a: []float64{1, 2, 3, 4}, b: []float64{2, 4, 6, 8}, want: 1},
		{name: "perfect negative", a: []float64{1, 2, 3, 4}, b: []float64{8, 6, 4, 2}, want: -1},
		{name: "constant vector", a: []float64{5, 5, 5}, b: []float64{1, 2, 3}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
		{name: "unequal lengths use common prefix", a: []float64{1, 2, 3}, b: []float64{1, 2, 3, 100}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Pearson(tt.a, tt.b), 1e-12)
		})
	}
}

func TestZScores(t *testing.T) {
	z := ZScores([]float64{2, 4, 6})
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, z, 1e-12)

	constant := ZScores([]float64{7, 7, 7})
	assert.Equal(t, []float64{0, 0, 0}, constant)
}
