package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/pkg/supabase"
)

const checkInsTable = "checkins"

type checkInRepository struct {
	client *supabase.Client
}

// checkInRow is the PostgREST shape of a check-in; local_date is a date column
type checkInRow struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	LocalDate   string    `json:"local_date"`
	CheckedInAt time.Time `json:"checked_in_at"`
	Status      string    `json:"status"`
	Mood        *int      `json:"mood"`
	HRVRMSSD    *float64  `json:"hrv_rmssd"`
	Note        string    `json:"note"`
	Tags        string    `json:"tags"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r checkInRow) model() (models.CheckIn, error) {
	d, err := time.Parse("2006-01-02", r.LocalDate)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("invalid local_date %q: %w", r.LocalDate, err)
	}
	return models.CheckIn{
		ID:          r.ID,
		UserID:      r.UserID,
		LocalDate:   d,
		CheckedInAt: r.CheckedInAt,
		Status:      models.Status(r.Status),
		Mood:        r.Mood,
		HRVRMSSD:    r.HRVRMSSD,
		Note:        r.Note,
		Tags:        r.Tags,
		Source:      r.Source,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func decodeCheckIns(body []byte) ([]models.CheckIn, error) {
	rows, err := decodeRows[checkInRow](body)
	if err != nil {
		return nil, err
	}
	out := make([]models.CheckIn, 0, len(rows))
	for _, row := range rows {
		c, err := row.model()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func firstCheckIn(body []byte) (*models.CheckIn, error) {
	all, err := decodeCheckIns(body)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNotFound
	}
	return &all[0], nil
}

func (r *checkInRepository) GetByID(ctx context.Context, id string) (*models.CheckIn, error) {
	body, err := r.client.Select(ctx, checkInsTable, supabase.Query{"id": supabase.Eq(id)})
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}
	return firstCheckIn(body)
}

func (r *checkInRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*models.CheckIn, error) {
	body, err := r.client.Select(ctx, checkInsTable, supabase.Query{
		"user_id":    supabase.Eq(userID),
		"local_date": supabase.Eq(date.Format("2006-01-02")),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}
	return firstCheckIn(body)
}

func (r *checkInRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CheckIn, error) {
	body, err := r.client.Select(ctx, checkInsTable, supabase.Query{
		"user_id": supabase.Eq(userID),
		"and":     fmt.Sprintf("(local_date.gte.%s,local_date.lte.%s)", start.Format("2006-01-02"), end.Format("2006-01-02")),
		"order":   "local_date.asc",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return decodeCheckIns(body)
}

func (r *checkInRepository) ListForExport(ctx context.Context, userID string) ([]models.CheckIn, error) {
	query := supabase.Query{"order": "user_id.asc,local_date.asc"}
	if userID != "" {
		query["user_id"] = supabase.Eq(userID)
	}
	body, err := r.client.Select(ctx, checkInsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to export check-ins: %w", err)
	}
	return decodeCheckIns(body)
}

// Upsert inserts with ignore-duplicates on (user_id, local_date); an empty
// representation means the record already existed and the fields are patched onto it.
func (r *checkInRepository) Upsert(ctx context.Context, base *models.CheckIn, fields models.CheckInFields) (*models.CheckIn, bool, error) {
	c := *base
	if c.Status == "" {
		c.Status = models.StatusOK
	}
	if c.CheckedInAt.IsZero() {
		c.CheckedInAt = time.Now().UTC()
	}
	fields.Apply(&c)

	localDate := c.LocalDate.Format("2006-01-02")
	data := map[string]any{
		"user_id":       c.UserID,
		"local_date":    localDate,
		"checked_in_at": c.CheckedInAt.UTC(),
		"status":        string(c.Status),
		"mood":          c.Mood,
		"hrv_rmssd":     c.HRVRMSSD,
		"note":          c.Note,
		"tags":          c.Tags,
		"source":        c.Source,
	}
	if c.ID != "" {
		data["id"] = c.ID
	}

	body, err := r.client.InsertIgnoreDuplicates(ctx, checkInsTable, data, "user_id,local_date")
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert check-in: %w", err)
	}
	inserted, err := decodeCheckIns(body)
	if err != nil {
		return nil, false, err
	}
	if len(inserted) == 1 {
		return &inserted[0], true, nil
	}

	patch := fieldsPatch(fields)
	if len(patch) == 0 {
		existing, err := r.GetByDate(ctx, c.UserID, c.LocalDate)
		return existing, false, err
	}

	patch["updated_at"] = time.Now().UTC()
	body, err = r.client.Update(ctx, checkInsTable, supabase.Query{
		"user_id":    supabase.Eq(c.UserID),
		"local_date": supabase.Eq(localDate),
	}, patch)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update check-in: %w", err)
	}
	updated, err := firstCheckIn(body)
	return updated, false, err
}

func fieldsPatch(f models.CheckInFields) map[string]any {
	patch := make(map[string]any)
	if f.Status != nil {
		patch["status"] = string(*f.Status)
	}
	if f.Mood != nil {
		patch["mood"] = *f.Mood
	}
	if f.HRVRMSSD != nil {
		patch["hrv_rmssd"] = *f.HRVRMSSD
	}
	if f.Note != nil {
		patch["note"] = *f.Note
	}
	if f.Tags != nil {
		patch["tags"] = *f.Tags
	}
	if f.Source != nil {
		patch["source"] = *f.Source
	}
	return patch
}

func (r *checkInRepository) Update(ctx context.Context, c *models.CheckIn) (*models.CheckIn, error) {
	patch := map[string]any{
		"status":     string(c.Status),
		"mood":       c.Mood,
		"hrv_rmssd":  c.HRVRMSSD,
		"note":       c.Note,
		"tags":       c.Tags,
		"updated_at": time.Now().UTC(),
	}
	body, err := r.client.Update(ctx, checkInsTable, supabase.Query{"id": supabase.Eq(c.ID)}, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}
	return firstCheckIn(body)
}

func (r *checkInRepository) Delete(ctx context.Context, id string) error {
	body, err := r.client.Delete(ctx, checkInsTable, supabase.Query{"id": supabase.Eq(id)})
	if err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	if _, err := firstCheckIn(body); err != nil {
		return err
	}
	return nil
}
