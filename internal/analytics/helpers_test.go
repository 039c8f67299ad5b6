package analytics

import (
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

var testToday = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testToday.AddDate(0, 0, -n)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func checkIn(daysBack int, status models.Status, mood *int) models.CheckIn {
	return models.CheckIn{
		UserID:    "user-1",
		LocalDate: daysAgo(daysBack),
		Status:    status,
		Mood:      mood,
	}
}
