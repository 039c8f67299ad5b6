package analytics

import "time"

// StreakResult is the number of consecutive days with a check-in ending today
type StreakResult struct {
	Days int `json:"days"`
}

// DateSet is a set of calendar dates keyed by DateKey
type DateSet map[string]struct{}

// NewDateSet builds a set from calendar dates
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Add inserts d into the set
func (s DateSet) Add(d time.Time) {
	s[DateKey(d)] = struct{}{}
}

// Has reports whether d is in the set
func (s DateSet) Has(d time.Time) bool {
	_, ok := s[DateKey(d)]
	return ok
}

// Streak counts backward from today one day at a time while each day has a
// check-in. A missing check-in today yields 0 even if yesterday was logged.
func Streak(dates DateSet, today time.Time) StreakResult {
	day := NormalizeDate(today)
	n := 0
	for dates.Has(day) {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return StreakResult{Days: n}
}
