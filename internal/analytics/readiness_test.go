package analytics

import (
	"testing"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReadiness(t *testing.T) {
	tests := []struct {
		name  string
		m     *Measurement
		level ReadinessLevel
		label string
	}{
		{name: "no measurement", m: nil, level: ReadinessUnknown, label: "No HRV data yet"},
		{name: "exactly 60", m: &Measurement{RMSSD: 60}, level: ReadinessHigh, label: "High readiness"},
		{name: "just below 60", m: &Measurement{RMSSD: 59.9}, level: ReadinessModerate, label: "Moderate readiness"},
		{name: "exactly 40", m: &Measurement{RMSSD: 40}, level: ReadinessModerate, label: "Moderate readiness"},
		{name: "below 40", m: &Measurement{RMSSD: 22}, level: ReadinessLow, label: "Low readiness"},
		{name: "resting HR ignored", m: &Measurement{RMSSD: 75, RestingHR: floatPtr(95)}, level: ReadinessHigh, label: "High readiness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ClassifyReadiness(tt.m)
			assert.Equal(t, tt.level, r.Level)
			assert.Equal(t, tt.label, r.Label)
			assert.NotEmpty(t, r.Description)
		})
	}
}

func TestTodayMeasurementPrefersReading(t *testing.T) {
	reading := &models.HRVReading{RMSSDms: floatPtr(62), RestingHR: floatPtr(55)}
	ci := &models.CheckIn{HRVRMSSD: floatPtr(30)}

	m := TodayMeasurement(reading, ci)

	require.NotNil(t, m)
	assert.Equal(t, 62.0, m.RMSSD)
	assert.Equal(t, SourceReading, m.Source)
}

func TestTodayMeasurementFallsBackToCheckIn(t *testing.T) {
	ci := &models.CheckIn{HRVRMSSD: floatPtr(45)}

	m := TodayMeasurement(&models.HRVReading{SDNNms: floatPtr(50)}, ci)

	require.NotNil(t, m)
	assert.Equal(t, 45.0, m.RMSSD)
	assert.Equal(t, SourceCheckIn, m.Source)
	assert.Nil(t, m.RestingHR)
}

func TestTodayMeasurementNone(t *testing.T) {
	assert.Nil(t, TodayMeasurement(nil, nil))
	assert.Nil(t, TodayMeasurement(nil, &models.CheckIn{}))
}

func TestHRVTip(t *testing.T) {
	generic := HRVTip(nil)
	assert.Contains(t, generic, "same time each morning")

	withHR := HRVTip(&Measurement{RMSSD: 61.6, RestingHR: floatPtr(52), Source: SourceReading})
	assert.Contains(t, withHR, "RMSSD: 62 ms")
	assert.Contains(t, withHR, "resting HR: 52 bpm")
	assert.NotContains(t, withHR, "check-in")

	fromCheckIn := HRVTip(&Measurement{RMSSD: 38, Source: SourceCheckIn})
	assert.Contains(t, fromCheckIn, "RMSSD: 38 ms")
	assert.Contains(t, fromCheckIn, "(from your check-in)")
	assert.NotContains(t, fromCheckIn, "resting HR")
}
