package stats

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickVIFTrivial(t *testing.T) {
	assert.Empty(t, QuickVIF(nil))
	assert.Equal(t, []float64{1.0}, QuickVIF([][]float64{{1, 2, 3}}))
}

func TestQuickVIFPerfectlyCorrelated(t *testing.T) {
	vifs := QuickVIF([][]float64{
		{1, 2, 3, 4, 5},
		{10, 20, 30, 40, 50},
	})

	require.Len(t, vifs, 2)
	assert.InDelta(t, 100.0, vifs[0], 1e-6)
	assert.InDelta(t, 100.0, vifs[1], 1e-6)
}

func TestQuickVIFIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	a := make([]float64, 2000)
	b := make([]float64, 2000)
	for i := range a {
		a[i] = rng.NormFloat64()
		b[i] = rng.NormFloat64()
	}

	vifs := QuickVIF([][]float64{a, b})

	require.Len(t, vifs, 2)
	assert.InDelta(t, 1.0, vifs[0], 0.05)
	assert.InDelta(t, 1.0, vifs[1], 0.05)
}

func TestQuickVIFConstantColumn(t *testing.T) {
	vifs := QuickVIF([][]float64{
		{3, 3, 3, 3},
		{1, 5, 2, 8},
	})

	assert.Equal(t, []float64{1.0, 1.0}, vifs)
}

func TestQuickVIFAtLeastOne(t *testing.T) {
	vifs := QuickVIF([][]float64{
		{1, 4, 2, 8, 5},
		{2, 3, 3, 9, 4},
		{7, 1, 6, 2, 3},
	})

	for _, v := range vifs {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}
