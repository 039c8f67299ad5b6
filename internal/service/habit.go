package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/prompts"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

// HabitAnchorDetail is a recipe together with its rendered prompt and next prompt time
type HabitAnchorDetail struct {
	models.HabitAnchor
	Prompt     string                   `json:"prompt"`
	NextPrompt *prompts.ScheduledPrompt `json:"next_prompt,omitempty"`
}

type habitService struct {
	repo     repository.HabitAnchorRepository
	assigner prompts.Assigner
	zones    *analytics.ZonePolicy
	clock    analytics.Clock
}

// NewHabitService creates a new habit recipe service. assigner picks the prompt
// variant of new recipes; nil draws uniformly at random.
func NewHabitService(repo repository.HabitAnchorRepository, assigner prompts.Assigner, zones *analytics.ZonePolicy, clock analytics.Clock) HabitService {
	if assigner == nil {
		assigner = prompts.NewRandomAssigner(nil)
	}
	if clock == nil {
		clock = analytics.SystemClock()
	}
	return &habitService{repo: repo, assigner: assigner, zones: zones, clock: clock}
}

// detail renders the prompt; only active recipes get a next prompt time
func (s *habitService) detail(anchor *models.HabitAnchor) *HabitAnchorDetail {
	d := &HabitAnchorDetail{
		HabitAnchor: *anchor,
		Prompt:      prompts.TinyPrompt(anchor),
	}
	if anchor.IsActive {
		now := s.clock.Now().In(s.zones.Location(anchor.UserID))
		next := prompts.ScheduleFromAnchor(anchor.AnchorAction, now)
		d.NextPrompt = &next
	}
	return d
}

func (s *habitService) CreateAnchor(ctx context.Context, userID string, req *models.CreateHabitAnchorRequest) (*HabitAnchorDetail, error) {
	action := strings.TrimSpace(req.AnchorAction)
	behavior := strings.TrimSpace(req.TinyBehavior)
	if action == "" || behavior == "" {
		return nil, fmt.Errorf("%w: anchor_action and tiny_behavior must not be blank", ErrInvalidInput)
	}

	anchor := &models.HabitAnchor{
		UserID:        userID,
		AnchorAction:  action,
		TinyBehavior:  behavior,
		Celebration:   strings.TrimSpace(req.Celebration),
		IsActive:      true,
		PromptVariant: s.assigner.Assign(),
	}

	created, err := s.repo.Create(ctx, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit recipe: %w", err)
	}
	return s.detail(created), nil
}

func (s *habitService) owned(ctx context.Context, userID, id string) (*models.HabitAnchor, error) {
	anchor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if anchor.UserID != userID {
		return nil, ErrNotFound
	}
	return anchor, nil
}

func (s *habitService) GetAnchor(ctx context.Context, userID, id string) (*HabitAnchorDetail, error) {
	anchor, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.detail(anchor), nil
}

func (s *habitService) ListAnchors(ctx context.Context, userID string) ([]HabitAnchorDetail, error) {
	anchors, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit recipes: %w", err)
	}

	details := make([]HabitAnchorDetail, 0, len(anchors))
	for i := range anchors {
		details = append(details, *s.detail(&anchors[i]))
	}
	return details, nil
}

func (s *habitService) UpdateAnchor(ctx context.Context, userID, id string, req *models.UpdateHabitAnchorRequest) (*HabitAnchorDetail, error) {
	anchor, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.AnchorAction != nil {
		anchor.AnchorAction = strings.TrimSpace(*req.AnchorAction)
	}
	if req.TinyBehavior != nil {
		anchor.TinyBehavior = strings.TrimSpace(*req.TinyBehavior)
	}
	if req.Celebration != nil {
		anchor.Celebration = strings.TrimSpace(*req.Celebration)
	}
	if req.IsActive != nil {
		anchor.IsActive = *req.IsActive
	}
	if anchor.AnchorAction == "" || anchor.TinyBehavior == "" {
		return nil, fmt.Errorf("%w: anchor_action and tiny_behavior must not be blank", ErrInvalidInput)
	}

	updated, err := s.repo.Update(ctx, anchor)
	if err != nil {
		return nil, err
	}
	return s.detail(updated), nil
}

func (s *habitService) ToggleAnchor(ctx context.Context, userID, id string) (*HabitAnchorDetail, error) {
	anchor, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	anchor.IsActive = !anchor.IsActive
	updated, err := s.repo.Update(ctx, anchor)
	if err != nil {
		return nil, err
	}
	return s.detail(updated), nil
}

func (s *habitService) DeleteAnchor(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
