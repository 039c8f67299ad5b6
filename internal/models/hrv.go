package models

import "time"

// HRVReading represents a manually entered heart-rate-variability measurement.
// A user may have many; the latest is the one with the greatest MeasuredAt.
type HRVReading struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MeasuredAt time.Time `json:"measured_at"`
	RMSSDms    *float64  `json:"rmssd_ms,omitempty"`
	SDNNms     *float64  `json:"sdnn_ms,omitempty"`
	RestingHR  *float64  `json:"resting_hr,omitempty"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateHRVRequest represents the request to log an HRV reading
type CreateHRVRequest struct {
	MeasuredAt *time.Time `json:"measured_at"`
	RMSSDms    *float64   `json:"rmssd_ms" binding:"omitnil,gt=0"`
	SDNNms     *float64   `json:"sdnn_ms" binding:"omitnil,gt=0"`
	RestingHR  *float64   `json:"resting_hr" binding:"omitnil,gt=0,lt=300"`
	Notes      string     `json:"notes" binding:"max=2000"`
}
