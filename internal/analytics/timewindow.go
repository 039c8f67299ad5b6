// Package analytics turns raw check-in and HRV records into the derived
// dashboard metrics: streak, mood trend, risk days, readiness and the
// habit-completion estimate. Everything here is pure and recomputed per request.
package analytics

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DateLayout is the canonical calendar-date format used for keys and storage
const DateLayout = "2006-01-02"

// DefaultZone is the system-wide zone used for "today" when no override applies
const DefaultZone = "America/New_York"

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now
func SystemClock() Clock { return systemClock{} }

// FixedClock always reports the same instant. Used by tests and offline tools.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DateOf returns the calendar day containing t in loc, normalized to midnight UTC
// so that day arithmetic is unaffected by DST transitions.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDate drops any time-of-day component from a calendar date
func NormalizeDate(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DateKey formats a calendar date as YYYY-MM-DD
func DateKey(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// Days returns the n consecutive calendar days ending at end, ascending
func Days(end time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	end = NormalizeDate(end)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = end.AddDate(0, 0, i-(n-1))
	}
	return days
}

// DayBounds returns the half-open instant range [start, end) covering calendar day d in loc
func DayBounds(d time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, day := d.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, loc)
	end := time.Date(y, m, day+1, 0, 0, 0, 0, loc)
	return start, end
}

// ZonePolicy decides which location a user's "today" is computed in:
// a per-user override when configured, otherwise the system-wide default.
type ZonePolicy struct {
	def       *time.Location
	overrides map[string]*time.Location
}

// NewZonePolicy loads the default zone and any per-user overrides (user ID -> IANA name)
func NewZonePolicy(defaultZone string, overrides map[string]string) (*ZonePolicy, error) {
	if defaultZone == "" {
		defaultZone = DefaultZone
	}
	def, err := time.LoadLocation(defaultZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load default time zone %q: %w", defaultZone, err)
	}

	p := &ZonePolicy{
		def:       def,
		overrides: make(map[string]*time.Location, len(overrides)),
	}
	for userID, name := range overrides {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load time zone %q for user %s: %w", name, userID, err)
		}
		p.overrides[userID] = loc
	}
	return p, nil
}

// Location returns the zone used for userID
func (p *ZonePolicy) Location(userID string) *time.Location {
	if loc, ok := p.overrides[userID]; ok {
		return loc
	}
	return p.def
}

// Today returns the user's current calendar date according to clock
func (p *ZonePolicy) Today(clock Clock, userID string) time.Time {
	return DateOf(clock.Now(), p.Location(userID))
}
