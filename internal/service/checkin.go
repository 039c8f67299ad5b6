package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/metrics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

// SourceWeb tags check-ins created through the API
const SourceWeb = "web"

// Bounds of the ?days= list window
const (
	DefaultListDays = 30
	MaxListDays     = 366
)

type checkInService struct {
	repo    repository.CheckInRepository
	zones   *analytics.ZonePolicy
	clock   analytics.Clock
	metrics metrics.Recorder
}

// NewCheckInService creates a new check-in service
func NewCheckInService(repo repository.CheckInRepository, zones *analytics.ZonePolicy, clock analytics.Clock, rec metrics.Recorder) CheckInService {
	if clock == nil {
		clock = analytics.SystemClock()
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &checkInService{repo: repo, zones: zones, clock: clock, metrics: rec}
}

// newToday returns the defaults of a freshly created check-in for today
func (s *checkInService) newToday(userID string) *models.CheckIn {
	return &models.CheckIn{
		UserID:      userID,
		LocalDate:   s.zones.Today(s.clock, userID),
		CheckedInAt: s.clock.Now().UTC(),
		Status:      models.StatusOK,
		Source:      SourceWeb,
	}
}

func (s *checkInService) GetOrCreateToday(ctx context.Context, userID string) (*models.CheckIn, bool, error) {
	checkIn, created, err := s.repo.Upsert(ctx, s.newToday(userID), models.CheckInFields{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create today's check-in: %w", err)
	}
	if created {
		s.metrics.IncCheckInUpserts(true)
	}
	return checkIn, created, nil
}

func (s *checkInService) UpsertToday(ctx context.Context, userID string, req *models.CheckInRequest) (*models.CheckIn, bool, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, false, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	checkIn, created, err := s.repo.Upsert(ctx, s.newToday(userID), req.Fields())
	if err != nil {
		return nil, false, fmt.Errorf("failed to save today's check-in: %w", err)
	}
	s.metrics.IncCheckInUpserts(created)

	logger.Ctx(ctx).Info("check-in saved",
		logger.String("checkin_id", checkIn.ID),
		logger.Date("local_date", checkIn.LocalDate),
		logger.Bool("created", created),
	)
	return checkIn, created, nil
}

func (s *checkInService) ListRecent(ctx context.Context, userID string, days int) ([]models.CheckIn, error) {
	if days <= 0 {
		days = DefaultListDays
	}
	if days > MaxListDays {
		days = MaxListDays
	}

	today := s.zones.Today(s.clock, userID)
	from := today.AddDate(0, 0, -(days - 1))

	checkIns, err := s.repo.ListByDateRange(ctx, userID, from, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkIns, nil
}

func (s *checkInService) GetCheckIn(ctx context.Context, userID, id string) (*models.CheckIn, error) {
	checkIn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Verify the check-in belongs to the user
	if checkIn.UserID != userID {
		return nil, ErrNotFound
	}
	return checkIn, nil
}

func (s *checkInService) UpdateCheckIn(ctx context.Context, userID, id string, req *models.UpdateCheckInRequest) (*models.CheckIn, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	checkIn, err := s.GetCheckIn(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req.Apply(checkIn)
	if !checkIn.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, checkIn.Status)
	}

	updated, err := s.repo.Update(ctx, checkIn)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}
	return updated, nil
}

func (s *checkInService) DeleteCheckIn(ctx context.Context, userID, id string) error {
	if _, err := s.GetCheckIn(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
