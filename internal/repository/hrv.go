package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/pkg/supabase"
)

const hrvTable = "hrv_readings"

type hrvRepository struct {
	client *supabase.Client
}

func (r *hrvRepository) Create(ctx context.Context, reading *models.HRVReading) (*models.HRVReading, error) {
	data := map[string]any{
		"user_id":     reading.UserID,
		"measured_at": reading.MeasuredAt.UTC(),
		"rmssd_ms":    reading.RMSSDms,
		"sdnn_ms":     reading.SDNNms,
		"resting_hr":  reading.RestingHR,
		"notes":       reading.Notes,
	}
	if reading.ID != "" {
		data["id"] = reading.ID
	}

	body, err := r.client.Insert(ctx, hrvTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create hrv reading: %w", err)
	}
	return decodeFirst[models.HRVReading](body)
}

func (r *hrvRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.HRVReading, error) {
	query := supabase.Query{
		"user_id": supabase.Eq(userID),
		"order":   "measured_at.desc,created_at.desc",
	}
	if limit > 0 {
		query["limit"] = limit
	}

	body, err := r.client.Select(ctx, hrvTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hrv readings: %w", err)
	}
	return decodeRows[models.HRVReading](body)
}

func (r *hrvRepository) latest(ctx context.Context, query supabase.Query) (*models.HRVReading, error) {
	query["order"] = "measured_at.desc,created_at.desc"
	query["limit"] = 1

	body, err := r.client.Select(ctx, hrvTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest hrv reading: %w", err)
	}
	rows, err := decodeRows[models.HRVReading](body)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *hrvRepository) GetLatest(ctx context.Context, userID string) (*models.HRVReading, error) {
	return r.latest(ctx, supabase.Query{"user_id": supabase.Eq(userID)})
}

func (r *hrvRepository) GetLatestBetween(ctx context.Context, userID string, start, end time.Time) (*models.HRVReading, error) {
	return r.latest(ctx, supabase.Query{
		"user_id": supabase.Eq(userID),
		"and": fmt.Sprintf("(measured_at.gte.%s,measured_at.lt.%s)",
			start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339)),
	})
}

func (r *hrvRepository) Update(ctx context.Context, reading *models.HRVReading) (*models.HRVReading, error) {
	patch := map[string]any{
		"measured_at": reading.MeasuredAt.UTC(),
		"rmssd_ms":    reading.RMSSDms,
		"sdnn_ms":     reading.SDNNms,
		"resting_hr":  reading.RestingHR,
		"notes":       reading.Notes,
	}
	body, err := r.client.Update(ctx, hrvTable, supabase.Query{"id": supabase.Eq(reading.ID)}, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update hrv reading: %w", err)
	}
	return decodeFirst[models.HRVReading](body)
}
