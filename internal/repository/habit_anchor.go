package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/pkg/supabase"
)

const habitAnchorsTable = "habit_anchors"

type habitAnchorRepository struct {
	client *supabase.Client
}

func (r *habitAnchorRepository) Create(ctx context.Context, anchor *models.HabitAnchor) (*models.HabitAnchor, error) {
	data := map[string]any{
		"user_id":        anchor.UserID,
		"anchor_action":  anchor.AnchorAction,
		"tiny_behavior":  anchor.TinyBehavior,
		"celebration":    anchor.Celebration,
		"is_active":      anchor.IsActive,
		"prompt_variant": anchor.PromptVariant,
	}
	if anchor.ID != "" {
		data["id"] = anchor.ID
	}

	body, err := r.client.Insert(ctx, habitAnchorsTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit anchor: %w", err)
	}
	return decodeFirst[models.HabitAnchor](body)
}

func (r *habitAnchorRepository) GetByID(ctx context.Context, id string) (*models.HabitAnchor, error) {
	body, err := r.client.Select(ctx, habitAnchorsTable, supabase.Query{"id": supabase.Eq(id)})
	if err != nil {
		return nil, fmt.Errorf("failed to get habit anchor: %w", err)
	}
	return decodeFirst[models.HabitAnchor](body)
}

func (r *habitAnchorRepository) ListByUser(ctx context.Context, userID string) ([]models.HabitAnchor, error) {
	body, err := r.client.Select(ctx, habitAnchorsTable, supabase.Query{
		"user_id": supabase.Eq(userID),
		"order":   "created_at.desc",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list habit anchors: %w", err)
	}
	return decodeRows[models.HabitAnchor](body)
}

func (r *habitAnchorRepository) GetLatestActive(ctx context.Context, userID string) (*models.HabitAnchor, error) {
	body, err := r.client.Select(ctx, habitAnchorsTable, supabase.Query{
		"user_id":   supabase.Eq(userID),
		"is_active": "eq.true",
		"order":     "created_at.desc",
		"limit":     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get active habit anchor: %w", err)
	}
	a, err := decodeFirst[models.HabitAnchor](body)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return a, err
}

func (r *habitAnchorRepository) Update(ctx context.Context, anchor *models.HabitAnchor) (*models.HabitAnchor, error) {
	data := map[string]any{
		"anchor_action": anchor.AnchorAction,
		"tiny_behavior": anchor.TinyBehavior,
		"celebration":   anchor.Celebration,
		"is_active":     anchor.IsActive,
	}

	body, err := r.client.Update(ctx, habitAnchorsTable, supabase.Query{"id": supabase.Eq(anchor.ID)}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit anchor: %w", err)
	}
	return decodeFirst[models.HabitAnchor](body)
}

func (r *habitAnchorRepository) Delete(ctx context.Context, id string) error {
	body, err := r.client.Delete(ctx, habitAnchorsTable, supabase.Query{"id": supabase.Eq(id)})
	if err != nil {
		return fmt.Errorf("failed to delete habit anchor: %w", err)
	}
	_, err = decodeFirst[models.HabitAnchor](body)
	return err
}
