package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/metrics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

// DefaultHRVListLimit caps GET /hrv when no limit is given
const DefaultHRVListLimit = 50

type hrvService struct {
	repo    repository.HRVRepository
	clock   analytics.Clock
	metrics metrics.Recorder
}

// NewHRVService creates a new HRV reading service
func NewHRVService(repo repository.HRVRepository, clock analytics.Clock, rec metrics.Recorder) HRVService {
	if clock == nil {
		clock = analytics.SystemClock()
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &hrvService{repo: repo, clock: clock, metrics: rec}
}

func (s *hrvService) CreateReading(ctx context.Context, userID string, req *models.CreateHRVRequest) (*models.HRVReading, error) {
	if req.RMSSDms == nil && req.SDNNms == nil && req.RestingHR == nil {
		return nil, fmt.Errorf("%w: at least one of rmssd_ms, sdnn_ms or resting_hr is required", ErrInvalidInput)
	}

	measuredAt := s.clock.Now()
	if req.MeasuredAt != nil {
		if req.MeasuredAt.After(measuredAt) {
			return nil, fmt.Errorf("%w: measured_at is in the future", ErrInvalidInput)
		}
		measuredAt = *req.MeasuredAt
	}

	reading := &models.HRVReading{
		UserID:     userID,
		MeasuredAt: measuredAt.UTC(),
		RMSSDms:    req.RMSSDms,
		SDNNms:     req.SDNNms,
		RestingHR:  req.RestingHR,
		Notes:      strings.TrimSpace(req.Notes),
	}

	created, err := s.repo.Create(ctx, reading)
	if err != nil {
		return nil, fmt.Errorf("failed to create HRV reading: %w", err)
	}
	s.metrics.IncHRVReadings()
	return created, nil
}

func (s *hrvService) ListReadings(ctx context.Context, userID string, limit int) ([]models.HRVReading, error) {
	if limit <= 0 || limit > 500 {
		limit = DefaultHRVListLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
