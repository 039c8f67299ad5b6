package analytics

import (
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// StatusMissing marks a trend day without any check-in. It is never stored.
const StatusMissing models.Status = "missing"

// DefaultTrendDays is the default trend window length
const DefaultTrendDays = 7

// TrendPoint is one calendar day of the mood/status trend
type TrendPoint struct {
	Date         time.Time     `json:"date"`
	Mood         *int          `json:"mood"`
	Status       models.Status `json:"status"`
	SmoothedMood *float64      `json:"smoothed_mood"`
}

// BuildTrend returns exactly n points covering [today-(n-1), today] ascending.
// Days without a check-in get StatusMissing and no mood.
func BuildTrend(checkIns []models.CheckIn, today time.Time, n int) []TrendPoint {
	byDate := make(map[string]models.CheckIn, len(checkIns))
	for _, c := range checkIns {
		byDate[DateKey(c.LocalDate)] = c
	}

	days := Days(today, n)
	points := make([]TrendPoint, len(days))
	for i, day := range days {
		p := TrendPoint{Date: day, Status: StatusMissing}
		if c, ok := byDate[DateKey(day)]; ok {
			p.Status = c.Status
			p.Mood = c.Mood
		}
		points[i] = p
	}
	return points
}

// SmoothTrend fills SmoothedMood on each point with a trailing moving average
// of mood over window k.
func SmoothTrend(points []TrendPoint, k int) []TrendPoint {
	moods := make([]*float64, len(points))
	for i, p := range points {
		if p.Mood != nil {
			v := float64(*p.Mood)
			moods[i] = &v
		}
	}

	smoothed := MovingAverage(moods, k)
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		p.SmoothedMood = smoothed[i]
		out[i] = p
	}
	return out
}
