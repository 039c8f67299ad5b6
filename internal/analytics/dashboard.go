package analytics

import (
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// RecentWindowDays reaches back from today for the behavioral completion
// feature. Both ends are inclusive, so the window spans RecentWindowDays+1 dates.
const RecentWindowDays = 7

// Options tunes the dashboard computation
type Options struct {
	TrendDays       int
	SmoothingWindow int
	Coefficients    Coefficients
}

// DefaultOptions returns a 7-day trend smoothed over 3 days with the default coefficients
func DefaultOptions() Options {
	return Options{
		TrendDays:       DefaultTrendDays,
		SmoothingWindow: DefaultSmoothingWindow,
		Coefficients:    DefaultCoefficients(),
	}
}

// Input is the record snapshot a dashboard is computed from
type Input struct {
	Today    time.Time
	Location *time.Location
	// CheckIns must cover the trend window; older records extend the streak walk.
	CheckIns []models.CheckIn
	// TodayReading is the latest HRV reading measured on Today, if any.
	TodayReading *models.HRVReading
	// LatestReading is the latest HRV reading of any date, if any.
	LatestReading *models.HRVReading
	// LatestUnavailable is set when LatestReading could not be loaded.
	LatestUnavailable bool
}

// Dashboard is the flat result handed to the presentation layer
type Dashboard struct {
	Today                 string       `json:"today"`
	TimeZone              string       `json:"time_zone"`
	Streak                StreakResult `json:"streak"`
	Trend                 []TrendPoint `json:"trend"`
	RiskCount             int          `json:"risk_count"`
	RiskDays              []TrendPoint `json:"risk_days"`
	Readiness             Readiness    `json:"readiness"`
	Completion            Completion   `json:"completion"`
	CompletionProb        float64      `json:"completion_prob"`
	CompletionExplanation string       `json:"completion_explanation"`
	TinyPrompt            string       `json:"tiny_prompt"`
	HRVTip                string       `json:"hrv_tip"`
}

// Compute derives every dashboard metric from in. The individual metrics share
// only their input and are independent of each other.
func Compute(in Input, opts Options) Dashboard {
	if opts.TrendDays <= 0 {
		opts.TrendDays = DefaultTrendDays
	}
	if opts.SmoothingWindow <= 0 {
		opts.SmoothingWindow = DefaultSmoothingWindow
	}

	today := NormalizeDate(in.Today)

	dates := make(DateSet, len(in.CheckIns))
	var todayCheckIn *models.CheckIn
	for i := range in.CheckIns {
		c := &in.CheckIns[i]
		dates.Add(c.LocalDate)
		if DateKey(c.LocalDate) == DateKey(today) {
			todayCheckIn = c
		}
	}

	trend := SmoothTrend(BuildTrend(in.CheckIns, today, opts.TrendDays), opts.SmoothingWindow)
	risky := RiskDays(trend)

	measurement := TodayMeasurement(in.TodayReading, todayCheckIn)

	completion := FallbackCompletion()
	if !in.LatestUnavailable {
		recent := CountInWindow(in.CheckIns, today, RecentWindowDays)
		if c, err := EstimateCompletion(opts.Coefficients, FeaturesFrom(recent, in.LatestReading)); err == nil {
			completion = c
		}
	}

	zone := ""
	if in.Location != nil {
		zone = in.Location.String()
	}

	return Dashboard{
		Today:                 DateKey(today),
		TimeZone:              zone,
		Streak:                Streak(dates, today),
		Trend:                 trend,
		RiskCount:             len(risky),
		RiskDays:              risky,
		Readiness:             ClassifyReadiness(measurement),
		Completion:            completion,
		CompletionProb:        completion.Percentage,
		CompletionExplanation: completion.Explanation,
		HRVTip:                HRVTip(measurement),
	}
}

// CountInWindow counts the distinct check-in dates from n days before today
// through today, inclusive
func CountInWindow(checkIns []models.CheckIn, today time.Time, n int) int {
	end := NormalizeDate(today)
	start := end.AddDate(0, 0, -n)
	seen := make(DateSet)
	for _, c := range checkIns {
		d := NormalizeDate(c.LocalDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		seen.Add(d)
	}
	return len(seen)
}
