package analytics

import (
	"fmt"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// RMSSD thresholds in milliseconds
const (
	HighReadinessRMSSD     = 60.0
	ModerateReadinessRMSSD = 40.0
)

// ReadinessLevel is the coarse recovery tier
type ReadinessLevel string

const (
	ReadinessHigh     ReadinessLevel = "high"
	ReadinessModerate ReadinessLevel = "moderate"
	ReadinessLow      ReadinessLevel = "low"
	ReadinessUnknown  ReadinessLevel = "unknown"
)

// MeasurementSource records where today's HRV value came from
type MeasurementSource string

const (
	SourceReading MeasurementSource = "hrv_reading"
	SourceCheckIn MeasurementSource = "checkin"
)

// Measurement is an HRV value known for today. A nil *Measurement means no
// measurement is available. RestingHR is nil when the value came from a check-in,
// which only records RMSSD.
type Measurement struct {
	RMSSD     float64
	RestingHR *float64
	Source    MeasurementSource
}

// MeasurementFromReading returns the measurement carried by r, or nil if r has no RMSSD
func MeasurementFromReading(r *models.HRVReading) *Measurement {
	if r == nil || r.RMSSDms == nil {
		return nil
	}
	return &Measurement{
		RMSSD:     *r.RMSSDms,
		RestingHR: r.RestingHR,
		Source:    SourceReading,
	}
}

// MeasurementFromCheckIn returns the RMSSD embedded in a check-in, or nil
func MeasurementFromCheckIn(c *models.CheckIn) *Measurement {
	if c == nil || c.HRVRMSSD == nil {
		return nil
	}
	return &Measurement{
		RMSSD:  *c.HRVRMSSD,
		Source: SourceCheckIn,
	}
}

// TodayMeasurement prefers today's dedicated HRV reading and falls back to the
// RMSSD recorded on today's check-in.
func TodayMeasurement(reading *models.HRVReading, checkIn *models.CheckIn) *Measurement {
	if m := MeasurementFromReading(reading); m != nil {
		return m
	}
	return MeasurementFromCheckIn(checkIn)
}

// Readiness is the classified recovery label shown on the dashboard
type Readiness struct {
	Level       ReadinessLevel `json:"level"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
}

var readinessByLevel = map[ReadinessLevel]Readiness{
	ReadinessUnknown: {
		Level:       ReadinessUnknown,
		Label:       "No HRV data yet",
		Description: "Log an HRV reading to see how recovered you are today. No pressure, your check-in still counts.",
	},
	ReadinessHigh: {
		Level:       ReadinessHigh,
		Label:       "High readiness",
		Description: "Your HRV suggests you are well recovered. A good day to lean into your habits.",
	},
	ReadinessModerate: {
		Level:       ReadinessModerate,
		Label:       "Moderate readiness",
		Description: "Your recovery looks moderate. Keep your habits small and steady today.",
	},
	ReadinessLow: {
		Level:       ReadinessLow,
		Label:       "Low readiness",
		Description: "Your HRV is lower than usual. Go easy and shrink today's habit to its tiniest version.",
	},
}

// ClassifyReadiness maps today's RMSSD to a readiness tier. Resting heart rate
// does not affect the tier.
func ClassifyReadiness(m *Measurement) Readiness {
	switch {
	case m == nil:
		return readinessByLevel[ReadinessUnknown]
	case m.RMSSD >= HighReadinessRMSSD:
		return readinessByLevel[ReadinessHigh]
	case m.RMSSD >= ModerateReadinessRMSSD:
		return readinessByLevel[ReadinessModerate]
	default:
		return readinessByLevel[ReadinessLow]
	}
}

// HRVTip builds the companion text shown next to the readiness label
func HRVTip(m *Measurement) string {
	if m == nil {
		return "Tip: measure HRV at the same time each morning, before coffee, for comparable readings."
	}

	tip := fmt.Sprintf("Today's RMSSD: %.0f ms", m.RMSSD)
	if m.RestingHR != nil {
		tip += fmt.Sprintf(", resting HR: %.0f bpm", *m.RestingHR)
	}
	if m.Source == SourceCheckIn {
		tip += " (from your check-in)"
	}
	return tip + ". Compare against your own baseline rather than population norms."
}
