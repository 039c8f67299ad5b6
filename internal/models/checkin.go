package models

import "time"

// Status is the self-reported state of a daily check-in
type Status string

const (
	StatusOK    Status = "ok"
	StatusWarn  Status = "warn"
	StatusBlock Status = "block"
)

// Valid reports whether s is one of the storable check-in statuses
func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusWarn, StatusBlock:
		return true
	default:
		return false
	}
}

// Label returns the human-readable label for the status
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "OK / On Track"
	case StatusWarn:
		return "At Risk"
	case StatusBlock:
		return "Blocked"
	default:
		return string(s)
	}
}

// CheckIn represents a user's daily check-in. At most one exists per (user, local date).
type CheckIn struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	LocalDate   time.Time `json:"local_date"`
	CheckedInAt time.Time `json:"checked_in_at"`
	Status      Status    `json:"status"`
	Mood        *int      `json:"mood,omitempty"`
	HRVRMSSD    *float64  `json:"hrv_rmssd,omitempty"`
	Note        string    `json:"note"`
	Tags        string    `json:"tags"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CheckInFields carries the mutable fields of a check-in for upserts.
// Nil fields are left untouched on update and defaulted on create.
type CheckInFields struct {
	Status   *Status
	Mood     *int
	HRVRMSSD *float64
	Note     *string
	Tags     *string
	Source   *string
}

// Apply copies the non-nil fields onto c
func (f CheckInFields) Apply(c *CheckIn) {
	if f.Status != nil {
		c.Status = *f.Status
	}
	if f.Mood != nil {
		c.Mood = f.Mood
	}
	if f.HRVRMSSD != nil {
		c.HRVRMSSD = f.HRVRMSSD
	}
	if f.Note != nil {
		c.Note = *f.Note
	}
	if f.Tags != nil {
		c.Tags = *f.Tags
	}
	if f.Source != nil {
		c.Source = *f.Source
	}
}

// CheckInRequest represents the request to create or update today's check-in
type CheckInRequest struct {
	Status   Status   `json:"status" binding:"omitempty,oneof=ok warn block"`
	Mood     *int     `json:"mood" binding:"omitnil,min=1,max=5"`
	HRVRMSSD *float64 `json:"hrv_rmssd" binding:"omitnil,gt=0"`
	Note     *string  `json:"note" binding:"omitnil,max=2000"`
	Tags     *string  `json:"tags" binding:"omitnil,max=128"`
}

// Fields converts the request into upsert fields
func (r *CheckInRequest) Fields() CheckInFields {
	f := CheckInFields{
		Mood:     r.Mood,
		HRVRMSSD: r.HRVRMSSD,
		Note:     r.Note,
		Tags:     r.Tags,
	}
	if r.Status != "" {
		status := r.Status
		f.Status = &status
	}
	return f
}

// FieldError describes an invalid request field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// UpdateCheckInRequest edits an existing check-in. Mood and HRV may be sent as
// null to clear them.
type UpdateCheckInRequest struct {
	Status   *Status         `json:"status" binding:"omitnil,oneof=ok warn block"`
	Mood     NullableInt     `json:"mood"`
	HRVRMSSD NullableFloat64 `json:"hrv_rmssd"`
	Note     *string         `json:"note" binding:"omitnil,max=2000"`
	Tags     *string         `json:"tags" binding:"omitnil,max=128"`
}

// Validate checks the tri-state fields, which struct tags cannot express
func (r *UpdateCheckInRequest) Validate() error {
	if r.Mood.Valid && (r.Mood.Value < 1 || r.Mood.Value > 5) {
		return &FieldError{Field: "mood", Message: "must be between 1 and 5"}
	}
	if r.HRVRMSSD.Valid && r.HRVRMSSD.Value <= 0 {
		return &FieldError{Field: "hrv_rmssd", Message: "must be greater than 0"}
	}
	return nil
}

// Apply copies every provided field onto c
func (r *UpdateCheckInRequest) Apply(c *CheckIn) {
	if r.Status != nil {
		c.Status = *r.Status
	}
	r.Mood.ApplyTo(&c.Mood)
	r.HRVRMSSD.ApplyTo(&c.HRVRMSSD)
	if r.Note != nil {
		c.Note = *r.Note
	}
	if r.Tags != nil {
		c.Tags = *r.Tags
	}
}
