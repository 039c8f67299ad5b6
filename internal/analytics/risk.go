package analytics

import "github.com/JonnyWalker81/habitpulse/backend/internal/models"

// RiskMoodThreshold is the highest mood still considered a risk signal
const RiskMoodThreshold = 2

// IsRiskDay reports whether a trend day is flagged: a warn/block status, or a
// logged mood at or below RiskMoodThreshold.
func IsRiskDay(p TrendPoint) bool {
	if p.Status == models.StatusWarn || p.Status == models.StatusBlock {
		return true
	}
	return p.Mood != nil && *p.Mood <= RiskMoodThreshold
}

// RiskDays returns the flagged points in trend order
func RiskDays(points []TrendPoint) []TrendPoint {
	risky := make([]TrendPoint, 0)
	for _, p := range points {
		if IsRiskDay(p) {
			risky = append(risky, p)
		}
	}
	return risky
}
