package stats

import (
	"math"
	"math/rand/v2"
)

// DefaultIterations is the permutation count used when the caller has no preference
const DefaultIterations = 10000

// ProportionSample is the success count of one binary-outcome group
type ProportionSample struct {
	Successes int
	Total     int
}

// Valid reports whether the sample can take part in a proportion test
func (s ProportionSample) Valid() bool {
	return s.Total > 0 && s.Successes >= 0 && s.Successes <= s.Total
}

// Proportion returns Successes/Total
func (s ProportionSample) Proportion() float64 {
	return float64(s.Successes) / float64(s.Total)
}

// PermutationTest returns the two-sided empirical p-value for the difference in
// success proportions between a and b. Outcomes of both groups are pooled and
// reshuffled iters times; the p-value is the share of shuffles whose absolute
// proportion difference is at least the observed one.
//
// Degenerate input (an invalid sample or iters <= 0) yields 1.0. A nil rng
// uses the global source.
func PermutationTest(rng *rand.Rand, a, b ProportionSample, iters int) float64 {
	if !a.Valid() || !b.Valid() || iters <= 0 {
		return 1.0
	}

	observed := math.Abs(a.Proportion() - b.Proportion())

	pooled := make([]bool, a.Total+b.Total)
	for i := 0; i < a.Successes; i++ {
		pooled[i] = true
	}
	for i := 0; i < b.Successes; i++ {
		pooled[a.Total+i] = true
	}
	totalSuccesses := a.Successes + b.Successes

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}

	extreme := 0
	for range iters {
		shuffle(len(pooled), func(i, j int) {
			pooled[i], pooled[j] = pooled[j], pooled[i]
		})

		inA := 0
		for _, success := range pooled[:a.Total] {
			if success {
				inA++
			}
		}
		diff := float64(inA)/float64(a.Total) - float64(totalSuccesses-inA)/float64(b.Total)
		if math.Abs(diff) >= observed {
			extreme++
		}
	}

	return float64(extreme) / float64(iters)
}
