package stats

import "math"

// MaxProxyR2 caps the proxy R² so that VIF stays finite (VIF <= 100)
const MaxProxyR2 = 0.99

// QuickVIF estimates a variance inflation factor per column. Each column is
// z-scored, its mean absolute Pearson correlation with the other columns is
// squared into a proxy R² clamped to [0, MaxProxyR2], and VIF = 1/(1-R²).
// Fewer than two columns give 1.0 for every column. Columns of unequal length
// are compared over their common prefix.
func QuickVIF(columns [][]float64) []float64 {
	vifs := make([]float64, len(columns))
	if len(columns) < 2 {
		for i := range vifs {
			vifs[i] = 1.0
		}
		return vifs
	}

	z := make([][]float64, len(columns))
	for i, col := range columns {
		z[i] = ZScores(col)
	}

	for i := range z {
		var sumAbs float64
		for j := range z {
			if i == j {
				continue
			}
			sumAbs += math.Abs(Pearson(z[i], z[j]))
		}
		avg := sumAbs / float64(len(z)-1)

		r2 := math.Max(0, math.Min(MaxProxyR2, avg*avg))
		vifs[i] = 1.0 / (1.0 - r2)
	}
	return vifs
}
