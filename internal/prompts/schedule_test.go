package prompts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFromAnchor(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.March, 12, 10, 15, 30, 0, ny)

	tests := []struct {
		name   string
		anchor string
		want   time.Time
		reason string
	}{
		{
			name:   "morning anchor already passed",
			anchor: "After I brush my teeth",
			want:   time.Date(2025, time.March, 13, 7, 30, 0, 0, ny),
			reason: ReasonFromAnchor,
		},
		{
			name:   "lunch later today",
			anchor: "When I sit down for LUNCH",
			want:   time.Date(2025, time.March, 12, 12, 0, 0, 0, ny),
			reason: ReasonFromAnchor,
		},
		{
			name:   "evening anchor",
			anchor: "after work",
			want:   time.Date(2025, time.March, 12, 18, 30, 0, 0, ny),
			reason: ReasonFromAnchor,
		},
		{
			name:   "waiting anchor fires soon",
			anchor: "while the kettle heats",
			want:   time.Date(2025, time.March, 12, 10, 20, 0, 0, ny),
			reason: ReasonFromAnchor,
		},
		{
			name:   "unrecognized text",
			anchor: "after I feed the cat",
			want:   time.Date(2025, time.March, 13, 9, 0, 0, 0, ny),
			reason: ReasonFallbackMorning,
		},
		{
			name:   "empty text",
			anchor: "",
			want:   time.Date(2025, time.March, 13, 9, 0, 0, 0, ny),
			reason: ReasonFallbackMorning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleFromAnchor(tt.anchor, now)
			assert.True(t, tt.want.Equal(got.NextFireAt), "want %s, got %s", tt.want, got.NextFireAt)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestScheduleFromAnchorFirstMatchWins(t *testing.T) {
	now := time.Date(2025, time.March, 12, 6, 0, 0, 0, time.UTC)

	// "morning" is checked before "evening"
	got := ScheduleFromAnchor("morning or evening walk", now)

	assert.Equal(t, time.Date(2025, time.March, 12, 7, 30, 0, 0, time.UTC), got.NextFireAt)
}

func TestScheduleFromAnchorWaitingAcrossMidnight(t *testing.T) {
	now := time.Date(2025, time.March, 12, 23, 57, 0, 0, time.UTC)

	got := ScheduleFromAnchor("microwave", now)

	assert.Equal(t, time.Date(2025, time.March, 13, 0, 2, 0, 0, time.UTC), got.NextFireAt)
}
