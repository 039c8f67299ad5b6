package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
)

const testUser = "user-1"

// 11:00 in New York on 2025-03-12 (EDT)
var testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

var testToday = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func testClock() analytics.Clock {
	return analytics.FixedClock{T: testNow}
}

func testZones(t *testing.T) *analytics.ZonePolicy {
	t.Helper()
	zones, err := analytics.NewZonePolicy("America/New_York", nil)
	require.NoError(t, err)
	return zones
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
func day(offset int) time.Time    { return testToday.AddDate(0, 0, offset) }
