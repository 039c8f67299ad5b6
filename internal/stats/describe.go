// Package stats holds the offline statistical diagnostics used when analyzing
// exported check-in data. They are approximate screening tools.
package stats

import "math"

// Mean returns the arithmetic mean of xs, or NaN when xs is empty
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the unbiased sample variance of xs, or NaN with fewer than two values
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	m := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}

// Pearson returns the correlation of a and b over their common prefix.
// A constant vector correlates 0 with anything.
func Pearson(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	a, b = a[:n], b[:n]

	ma, mb := Mean(a), Mean(b)
	var num, da, db float64
	for i := 0; i < n; i++ {
		x := a[i] - ma
		y := b[i] - mb
		num += x * y
		da += x * x
		db += y * y
	}

	if da <= 0 || db <= 0 {
		return 0
	}
	return num / (math.Sqrt(da) * math.Sqrt(db))
}

// ZScores standardizes xs to mean 0 and unit sample variance. Columns without a
// positive variance are centered only.
func ZScores(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}

	m := Mean(xs)
	sd := 1.0
	if v := Variance(xs); v > 0 {
		sd = math.Sqrt(v)
	}
	for i, x := range xs {
		out[i] = (x - m) / sd
	}
	return out
}
