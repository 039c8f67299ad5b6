package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

const hrvColumns = `id, user_id, measured_at, rmssd_ms, sdnn_ms, resting_hr, notes, created_at`

type hrvRepository struct {
	store *Store
}

func scanHRV(row rowScanner) (*models.HRVReading, error) {
	var (
		h                  models.HRVReading
		measured, created  string
		rmssd, sdnn, restH sql.NullFloat64
	)
	if err := row.Scan(&h.ID, &h.UserID, &measured, &rmssd, &sdnn, &restH, &h.Notes, &created); err != nil {
		return nil, err
	}

	var err error
	if h.MeasuredAt, err = parseTimestamp(measured); err != nil {
		return nil, err
	}
	if h.CreatedAt, err = parseTimestamp(created); err != nil {
		return nil, err
	}
	h.RMSSDms = floatPtr(rmssd)
	h.SDNNms = floatPtr(sdnn)
	h.RestingHR = floatPtr(restH)
	return &h, nil
}

func (r *hrvRepository) Create(ctx context.Context, reading *models.HRVReading) (*models.HRVReading, error) {
	h := *reading
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.CreatedAt = time.Now().UTC()
	if h.MeasuredAt.IsZero() {
		h.MeasuredAt = h.CreatedAt
	}

	_, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`INSERT INTO hrv_readings (`+hrvColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		h.ID, h.UserID, formatTimestamp(h.MeasuredAt), nullFloat(h.RMSSDms), nullFloat(h.SDNNms),
		nullFloat(h.RestingHR), h.Notes, formatTimestamp(h.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to create hrv reading: %w", err)
	}

	h.MeasuredAt = h.MeasuredAt.UTC()
	return &h, nil
}

func (r *hrvRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.HRVReading, error) {
	query := `SELECT ` + hrvColumns + ` FROM hrv_readings WHERE user_id = ? ORDER BY measured_at DESC, created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list hrv readings: %w", err)
	}
	defer rows.Close()

	readings := []models.HRVReading{}
	for rows.Next() {
		h, err := scanHRV(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hrv reading: %w", err)
		}
		readings = append(readings, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hrv readings: %w", err)
	}
	return readings, nil
}

func (r *hrvRepository) latest(ctx context.Context, where string, args ...any) (*models.HRVReading, error) {
	row := r.store.db.QueryRowContext(ctx, r.store.rebind(
		`SELECT `+hrvColumns+` FROM hrv_readings WHERE `+where+`
		 ORDER BY measured_at DESC, created_at DESC LIMIT 1`), args...)
	h, err := scanHRV(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest hrv reading: %w", err)
	}
	return h, nil
}

func (r *hrvRepository) GetLatest(ctx context.Context, userID string) (*models.HRVReading, error) {
	return r.latest(ctx, `user_id = ?`, userID)
}

func (r *hrvRepository) GetLatestBetween(ctx context.Context, userID string, start, end time.Time) (*models.HRVReading, error) {
	return r.latest(ctx, `user_id = ? AND measured_at >= ? AND measured_at < ?`,
		userID, formatTimestamp(start), formatTimestamp(end))
}

func (r *hrvRepository) Update(ctx context.Context, reading *models.HRVReading) (*models.HRVReading, error) {
	res, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`UPDATE hrv_readings SET measured_at = ?, rmssd_ms = ?, sdnn_ms = ?, resting_hr = ?, notes = ?
		 WHERE id = ?`),
		formatTimestamp(reading.MeasuredAt), nullFloat(reading.RMSSDms), nullFloat(reading.SDNNms),
		nullFloat(reading.RestingHR), reading.Notes, reading.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update hrv reading: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}

	h, err := r.latest(ctx, `id = ?`, reading.ID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, repository.ErrNotFound
	}
	return h, nil
}
