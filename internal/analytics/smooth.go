package analytics

// DefaultSmoothingWindow is the default moving-average window
const DefaultSmoothingWindow = 3

// MovingAverage applies a causal trailing mean of width k. Output i averages the
// present values among positions [max(0, i-k+1), i]; if all are absent the output
// is absent too. Output length always equals input length.
func MovingAverage(values []*float64, k int) []*float64 {
	if k < 1 {
		k = 1
	}

	out := make([]*float64, len(values))
	for i := range values {
		start := i - k + 1
		if start < 0 {
			start = 0
		}

		var sum float64
		var count int
		for _, v := range values[start : i+1] {
			if v != nil {
				sum += *v
				count++
			}
		}

		if count > 0 {
			mean := sum / float64(count)
			out[i] = &mean
		}
	}
	return out
}
