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

const anchorColumns = `id, user_id, anchor_action, tiny_behavior, celebration, is_active, prompt_variant, created_at, updated_at`

type habitAnchorRepository struct {
	store *Store
}

func scanAnchor(row rowScanner) (*models.HabitAnchor, error) {
	var (
		a            models.HabitAnchor
		variant      string
		created, upd string
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.AnchorAction, &a.TinyBehavior, &a.Celebration,
		&a.IsActive, &variant, &created, &upd); err != nil {
		return nil, err
	}

	var err error
	if a.CreatedAt, err = parseTimestamp(created); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTimestamp(upd); err != nil {
		return nil, err
	}
	a.PromptVariant = models.PromptVariant(variant)
	return &a, nil
}

func (r *habitAnchorRepository) Create(ctx context.Context, anchor *models.HabitAnchor) (*models.HabitAnchor, error) {
	a := *anchor
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.PromptVariant == "" {
		a.PromptVariant = models.PromptVariantA
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now

	_, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`INSERT INTO habit_anchors (`+anchorColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		a.ID, a.UserID, a.AnchorAction, a.TinyBehavior, a.Celebration, a.IsActive,
		string(a.PromptVariant), formatTimestamp(now), formatTimestamp(now))
	if err != nil {
		return nil, fmt.Errorf("failed to create habit anchor: %w", err)
	}
	return &a, nil
}

func (r *habitAnchorRepository) one(ctx context.Context, query string, args ...any) (*models.HabitAnchor, error) {
	a, err := scanAnchor(r.store.db.QueryRowContext(ctx, r.store.rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit anchor: %w", err)
	}
	return a, nil
}

func (r *habitAnchorRepository) GetByID(ctx context.Context, id string) (*models.HabitAnchor, error) {
	return r.one(ctx, `SELECT `+anchorColumns+` FROM habit_anchors WHERE id = ?`, id)
}

func (r *habitAnchorRepository) GetLatestActive(ctx context.Context, userID string) (*models.HabitAnchor, error) {
	a, err := r.one(ctx,
		`SELECT `+anchorColumns+` FROM habit_anchors
		 WHERE user_id = ? AND is_active = ?
		 ORDER BY created_at DESC LIMIT 1`, userID, true)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return a, err
}

func (r *habitAnchorRepository) ListByUser(ctx context.Context, userID string) ([]models.HabitAnchor, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(
		`SELECT `+anchorColumns+` FROM habit_anchors WHERE user_id = ? ORDER BY created_at DESC`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit anchors: %w", err)
	}
	defer rows.Close()

	anchors := []models.HabitAnchor{}
	for rows.Next() {
		a, err := scanAnchor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit anchor: %w", err)
		}
		anchors = append(anchors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit anchors: %w", err)
	}
	return anchors, nil
}

func (r *habitAnchorRepository) Update(ctx context.Context, anchor *models.HabitAnchor) (*models.HabitAnchor, error) {
	res, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`UPDATE habit_anchors
		 SET anchor_action = ?, tiny_behavior = ?, celebration = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`),
		anchor.AnchorAction, anchor.TinyBehavior, anchor.Celebration, anchor.IsActive,
		formatTimestamp(time.Now()), anchor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit anchor: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, anchor.ID)
}

func (r *habitAnchorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.store.db.ExecContext(ctx, r.store.rebind(`DELETE FROM habit_anchors WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete habit anchor: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
