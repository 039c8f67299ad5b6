package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

const checkInColumns = `id, user_id, local_date, checked_in_at, status, mood, hrv_rmssd, note, tags, source, created_at, updated_at`

type checkInRepository struct {
	store *Store
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanCheckIn(row rowScanner) (*models.CheckIn, error) {
	var (
		c                                  models.CheckIn
		localDate, checkedAt, created, upd string
		status                             string
		mood                               sql.NullInt64
		rmssd                              sql.NullFloat64
	)
	if err := row.Scan(&c.ID, &c.UserID, &localDate, &checkedAt, &status, &mood, &rmssd,
		&c.Note, &c.Tags, &c.Source, &created, &upd); err != nil {
		return nil, err
	}

	var err error
	if c.LocalDate, err = parseDate(localDate); err != nil {
		return nil, err
	}
	if c.CheckedInAt, err = parseTimestamp(checkedAt); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTimestamp(created); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTimestamp(upd); err != nil {
		return nil, err
	}
	c.Status = models.Status(status)
	c.Mood = intPtr(mood)
	c.HRVRMSSD = floatPtr(rmssd)
	return &c, nil
}

func (r *checkInRepository) getOne(ctx context.Context, q queryer, where string, args ...any) (*models.CheckIn, error) {
	row := q.QueryRowContext(ctx, r.store.rebind(`SELECT `+checkInColumns+` FROM checkins WHERE `+where), args...)
	c, err := scanCheckIn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}
	return c, nil
}

func (r *checkInRepository) GetByID(ctx context.Context, id string) (*models.CheckIn, error) {
	return r.getOne(ctx, r.store.db, `id = ?`, id)
}

func (r *checkInRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*models.CheckIn, error) {
	return r.getOne(ctx, r.store.db, `user_id = ? AND local_date = ?`, userID, formatDate(date))
}

func (r *checkInRepository) list(ctx context.Context, query string, args ...any) ([]models.CheckIn, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := []models.CheckIn{}
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check-ins: %w", err)
	}
	return checkIns, nil
}

func (r *checkInRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CheckIn, error) {
	return r.list(ctx,
		`SELECT `+checkInColumns+` FROM checkins
		 WHERE user_id = ? AND local_date >= ? AND local_date <= ?
		 ORDER BY local_date ASC`,
		userID, formatDate(start), formatDate(end))
}

func (r *checkInRepository) ListForExport(ctx context.Context, userID string) ([]models.CheckIn, error) {
	if userID == "" {
		return r.list(ctx, `SELECT `+checkInColumns+` FROM checkins ORDER BY user_id, local_date`)
	}
	return r.list(ctx, `SELECT `+checkInColumns+` FROM checkins WHERE user_id = ? ORDER BY local_date`, userID)
}

// Upsert relies on the (user_id, local_date) unique constraint: the insert is a
// no-op when a record already exists, in which case the provided fields are
// applied to it instead.
func (r *checkInRepository) Upsert(ctx context.Context, base *models.CheckIn, fields models.CheckInFields) (*models.CheckIn, bool, error) {
	now := time.Now().UTC()
	c := *base
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = models.StatusOK
	}
	if c.CheckedInAt.IsZero() {
		c.CheckedInAt = now
	}
	fields.Apply(&c)

	var (
		result  *models.CheckIn
		created bool
	)
	err := r.store.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, r.store.rebind(
			`INSERT INTO checkins (`+checkInColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (user_id, local_date) DO NOTHING`),
			c.ID, c.UserID, formatDate(c.LocalDate), formatTimestamp(c.CheckedInAt), string(c.Status),
			nullInt(c.Mood), nullFloat(c.HRVRMSSD), c.Note, c.Tags, c.Source,
			formatTimestamp(now), formatTimestamp(now))
		if err != nil {
			return fmt.Errorf("failed to insert check-in: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read insert result: %w", err)
		}
		created = affected == 1

		if !created {
			if err := r.applyFields(ctx, tx, c.UserID, c.LocalDate, fields, now); err != nil {
				return err
			}
		}

		result, err = r.getOne(ctx, tx, `user_id = ? AND local_date = ?`, c.UserID, formatDate(c.LocalDate))
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

func (r *checkInRepository) applyFields(ctx context.Context, tx *sql.Tx, userID string, date time.Time, f models.CheckInFields, now time.Time) error {
	var (
		sets []string
		args []any
	)
	if f.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*f.Status))
	}
	if f.Mood != nil {
		sets = append(sets, "mood = ?")
		args = append(args, *f.Mood)
	}
	if f.HRVRMSSD != nil {
		sets = append(sets, "hrv_rmssd = ?")
		args = append(args, *f.HRVRMSSD)
	}
	if f.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, *f.Note)
	}
	if f.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, *f.Tags)
	}
	if f.Source != nil {
		sets = append(sets, "source = ?")
		args = append(args, *f.Source)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, formatTimestamp(now), userID, formatDate(date))

	query := `UPDATE checkins SET ` + strings.Join(sets, ", ") + ` WHERE user_id = ? AND local_date = ?`
	if _, err := tx.ExecContext(ctx, r.store.rebind(query), args...); err != nil {
		return fmt.Errorf("failed to update check-in: %w", err)
	}
	return nil
}

func (r *checkInRepository) Update(ctx context.Context, c *models.CheckIn) (*models.CheckIn, error) {
	res, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`UPDATE checkins SET status = ?, mood = ?, hrv_rmssd = ?, note = ?, tags = ?, updated_at = ?
		 WHERE id = ?`),
		string(c.Status), nullInt(c.Mood), nullFloat(c.HRVRMSSD), c.Note, c.Tags,
		formatTimestamp(time.Now()), c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *checkInRepository) Delete(ctx context.Context, id string) error {
	res, err := r.store.db.ExecContext(ctx, r.store.rebind(`DELETE FROM checkins WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
