package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfUsesZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:30 UTC on the 12th is still the evening of the 11th in New York
	instant := time.Date(2025, time.March, 12, 2, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-11", DateKey(DateOf(instant, ny)))
	assert.Equal(t, "2025-03-12", DateKey(DateOf(instant, time.UTC)))
}

func TestDaysAscendingAcrossDST(t *testing.T) {
	// US DST began 2025-03-09; calendar arithmetic must not skip or repeat a day
	days := Days(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), 4)

	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = DateKey(d)
	}
	assert.Equal(t, []string{"2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10"}, keys)
}

func TestDaysNonPositive(t *testing.T) {
	assert.Empty(t, Days(testToday, 0))
	assert.Empty(t, Days(testToday, -3))
}

func TestDayBounds(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start, end := DayBounds(testToday, ny)
	assert.Equal(t, "2025-03-12T00:00:00-04:00", start.Format(time.RFC3339))
	assert.Equal(t, "2025-03-13T00:00:00-04:00", end.Format(time.RFC3339))
}

func TestZonePolicy(t *testing.T) {
	policy, err := NewZonePolicy("", map[string]string{"tokyo-user": "Asia/Tokyo"})
	require.NoError(t, err)

	assert.Equal(t, DefaultZone, policy.Location("anyone").String())
	assert.Equal(t, "Asia/Tokyo", policy.Location("tokyo-user").String())

	clock := FixedClock{T: time.Date(2025, time.March, 12, 20, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2025-03-12", DateKey(policy.Today(clock, "anyone")))
	assert.Equal(t, "2025-03-13", DateKey(policy.Today(clock, "tokyo-user")))
}

func TestZonePolicyRejectsUnknownZone(t *testing.T) {
	_, err := NewZonePolicy("Mars/Olympus_Mons", nil)
	assert.Error(t, err)

	_, err = NewZonePolicy("UTC", map[string]string{"u": "Nowhere/Else"})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())

	_, err = ParseDate("31/01/2025")
	assert.Error(t, err)
}
