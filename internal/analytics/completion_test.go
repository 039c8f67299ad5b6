package analytics

import (
	"math"
	"testing"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCompletionDefaults(t *testing.T) {
	f := FeaturesFrom(0, nil)
	assert.Equal(t, CompletionFeatures{RecentCheckIns: 0, RMSSD: 0, RestingHR: 70}, f)

	c := DefaultCoefficients()
	assert.InDelta(t, -0.56, c.Logit(f), 1e-9)

	got, err := EstimateCompletion(c, f)
	require.NoError(t, err)
	assert.InDelta(t, 0.3635, got.Probability, 0.0005)
	assert.InDelta(t, 36.35, got.Percentage, 0.051)
	assert.Equal(t, BandModerate, got.Band)
	assert.NotEmpty(t, got.Explanation)
}

func TestEstimateCompletionBands(t *testing.T) {
	c := DefaultCoefficients()

	low, err := EstimateCompletion(c, CompletionFeatures{RecentCheckIns: 0, RMSSD: 10, RestingHR: 110})
	require.NoError(t, err)
	assert.Equal(t, BandChallenging, low.Band)

	high, err := EstimateCompletion(c, CompletionFeatures{RecentCheckIns: 7, RMSSD: 80, RestingHR: 50})
	require.NoError(t, err)
	assert.Equal(t, BandFavorable, high.Band)
	assert.Greater(t, high.Probability, low.Probability)
}

func TestEstimateCompletionMonotoneInCheckIns(t *testing.T) {
	c := DefaultCoefficients()
	prev := -1.0
	for n := 0; n <= 7; n++ {
		got, err := EstimateCompletion(c, CompletionFeatures{RecentCheckIns: n, RMSSD: 50, RestingHR: 65})
		require.NoError(t, err)
		assert.Greater(t, got.Probability, prev)
		prev = got.Probability
	}
}

func TestEstimateCompletionNaN(t *testing.T) {
	_, err := EstimateCompletion(DefaultCoefficients(), CompletionFeatures{RMSSD: math.NaN(), RestingHR: 70})
	assert.ErrorIs(t, err, ErrNoEstimate)
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	assert.Equal(t, 1.0, Sigmoid(math.Inf(1)))
	assert.Equal(t, 0.0, Sigmoid(math.Inf(-1)))

	// large magnitudes must not overflow to NaN
	assert.InDelta(t, 1.0, Sigmoid(1000), 1e-12)
	assert.InDelta(t, 0.0, Sigmoid(-1000), 1e-12)
	assert.False(t, math.IsNaN(Sigmoid(-1000)))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandChallenging, BandFor(0.329))
	assert.Equal(t, BandModerate, BandFor(0.33))
	assert.Equal(t, BandModerate, BandFor(0.669))
	assert.Equal(t, BandFavorable, BandFor(0.67))
}

func TestFeaturesFromPartialReading(t *testing.T) {
	f := FeaturesFrom(3, &models.HRVReading{RMSSDms: floatPtr(48)})

	assert.Equal(t, 3, f.RecentCheckIns)
	assert.Equal(t, 48.0, f.RMSSD)
	assert.Equal(t, DefaultRestingHR, f.RestingHR)
}

func TestFallbackCompletion(t *testing.T) {
	fb := FallbackCompletion()
	assert.Equal(t, BandUnavailable, fb.Band)
	assert.Zero(t, fb.Percentage)
	assert.NotEmpty(t, fb.Explanation)
}
