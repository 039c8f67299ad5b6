package analytics

import (
	"errors"
	"math"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// Defaults used when the user has never logged an HRV reading
const (
	DefaultRMSSD     = 0.0
	DefaultRestingHR = 70.0
)

// Probability band edges for the user-facing explanation
const (
	ChallengingBelow = 0.33
	FavorableFrom    = 0.67
)

// ErrNoEstimate is returned when the estimator cannot produce a finite probability
var ErrNoEstimate = errors.New("completion probability unavailable")

// Coefficients of the hand-tuned logit. These are illustrative, not fitted.
type Coefficients struct {
	Intercept float64
	Recent    float64
	RMSSD     float64
	RestingHR float64
}

// DefaultCoefficients returns b0=-0.5, b1=0.25, b2=0.4, b3=0.6
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Intercept: -0.5,
		Recent:    0.25,
		RMSSD:     0.4,
		RestingHR: 0.6,
	}
}

// CompletionFeatures are the behavioral and physiological inputs of the estimator
type CompletionFeatures struct {
	RecentCheckIns int
	RMSSD          float64
	RestingHR      float64
}

// FeaturesFrom builds estimator features from the trailing-week check-in count and
// the user's latest HRV reading of any date, substituting defaults for absent values.
func FeaturesFrom(recentCheckIns int, latest *models.HRVReading) CompletionFeatures {
	f := CompletionFeatures{
		RecentCheckIns: recentCheckIns,
		RMSSD:          DefaultRMSSD,
		RestingHR:      DefaultRestingHR,
	}
	if latest != nil {
		if latest.RMSSDms != nil {
			f.RMSSD = *latest.RMSSDms
		}
		if latest.RestingHR != nil {
			f.RestingHR = *latest.RestingHR
		}
	}
	return f
}

// Logit computes b0 + b1*n + b2*(rmssd/100) + b3*(-(hr-60)/100)
func (c Coefficients) Logit(f CompletionFeatures) float64 {
	return c.Intercept +
		c.Recent*float64(f.RecentCheckIns) +
		c.RMSSD*(f.RMSSD/100.0) +
		c.RestingHR*(-(f.RestingHR-60.0)/100.0)
}

// Sigmoid maps x to (0, 1) without overflow; infinite inputs saturate to 0 or 1
func Sigmoid(x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return 1.0
	case math.IsInf(x, -1):
		return 0.0
	case x >= 0:
		return 1.0 / (1.0 + math.Exp(-x))
	default:
		e := math.Exp(x)
		return e / (1.0 + e)
	}
}

// CompletionBand groups probabilities for the explanation text
type CompletionBand string

const (
	BandChallenging CompletionBand = "challenging"
	BandModerate    CompletionBand = "moderate"
	BandFavorable   CompletionBand = "favorable"
	BandUnavailable CompletionBand = "unavailable"
)

var explanations = map[CompletionBand]string{
	BandChallenging: "Today looks challenging. Shrink the habit to its smallest version and celebrate just showing up.",
	BandModerate:    "Moderate odds today. Stick with your usual tiny habit, nothing more is needed.",
	BandFavorable:   "Conditions look favorable. Keep the momentum going and celebrate each repetition.",
	BandUnavailable: "We couldn't estimate your completion odds right now. Any small step still counts.",
}

// Completion is the estimator output shown on the dashboard
type Completion struct {
	Probability float64        `json:"probability"`
	Percentage  float64        `json:"percentage"`
	Band        CompletionBand `json:"band"`
	Explanation string         `json:"explanation"`
}

// BandFor returns the explanation band of probability p
func BandFor(p float64) CompletionBand {
	switch {
	case p < ChallengingBelow:
		return BandChallenging
	case p < FavorableFrom:
		return BandModerate
	default:
		return BandFavorable
	}
}

// EstimateCompletion evaluates the logistic model. It returns ErrNoEstimate if the
// result is not a finite probability.
func EstimateCompletion(c Coefficients, f CompletionFeatures) (Completion, error) {
	p := Sigmoid(c.Logit(f))
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Completion{}, ErrNoEstimate
	}

	band := BandFor(p)
	return Completion{
		Probability: p,
		Percentage:  math.Round(p*1000) / 10,
		Band:        band,
		Explanation: explanations[band],
	}, nil
}

// FallbackCompletion is shown when no estimate could be produced
func FallbackCompletion() Completion {
	return Completion{
		Probability: 0,
		Percentage:  0,
		Band:        BandUnavailable,
		Explanation: explanations[BandUnavailable],
	}
}
