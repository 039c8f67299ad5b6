package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/metrics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/prompts"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

// DefaultStreakLookbackDays bounds how far back check-ins are loaded for the streak walk
const DefaultStreakLookbackDays = 730

// DashboardConfig tunes the dashboard service
type DashboardConfig struct {
	Options            analytics.Options
	StreakLookbackDays int
}

type dashboardService struct {
	checkIns repository.CheckInRepository
	hrv      repository.HRVRepository
	anchors  repository.HabitAnchorRepository
	zones    *analytics.ZonePolicy
	clock    analytics.Clock
	cfg      DashboardConfig
	metrics  metrics.Recorder
}

// NewDashboardService creates a new dashboard service. A nil clock uses the
// system clock and a nil recorder discards metrics.
func NewDashboardService(
	checkIns repository.CheckInRepository,
	hrv repository.HRVRepository,
	anchors repository.HabitAnchorRepository,
	zones *analytics.ZonePolicy,
	clock analytics.Clock,
	cfg DashboardConfig,
	rec metrics.Recorder,
) DashboardService {
	if clock == nil {
		clock = analytics.SystemClock()
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	if cfg.StreakLookbackDays <= 0 {
		cfg.StreakLookbackDays = DefaultStreakLookbackDays
	}
	return &dashboardService{
		checkIns: checkIns,
		hrv:      hrv,
		anchors:  anchors,
		zones:    zones,
		clock:    clock,
		cfg:      cfg,
		metrics:  rec,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*analytics.Dashboard, error) {
	started := time.Now()
	log := logger.Ctx(ctx)

	loc := s.zones.Location(userID)
	today := s.zones.Today(s.clock, userID)

	lookback := max(s.cfg.StreakLookbackDays, s.cfg.Options.TrendDays, analytics.RecentWindowDays+1)
	from := today.AddDate(0, 0, -(lookback - 1))
	dayStart, dayEnd := analytics.DayBounds(today, loc)

	var (
		checkIns      []models.CheckIn
		todayReading  *models.HRVReading
		latestReading *models.HRVReading
		latestErr     error
		anchor        *models.HabitAnchor
	)

	// Only the check-ins are required; every other record degrades gracefully.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checkIns, err = s.checkIns.ListByDateRange(gctx, userID, from, today)
		if err != nil {
			return fmt.Errorf("failed to load check-ins: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		todayReading, err = s.hrv.GetLatestBetween(gctx, userID, dayStart, dayEnd)
		if err != nil {
			log.Warn("failed to load today's HRV reading", logger.Err(err))
			todayReading = nil
		}
		return nil
	})
	g.Go(func() error {
		latestReading, latestErr = s.hrv.GetLatest(gctx, userID)
		return nil
	})
	g.Go(func() error {
		var err error
		anchor, err = s.anchors.GetLatestActive(gctx, userID)
		if err != nil {
			log.Warn("failed to load active habit recipe", logger.Err(err))
			anchor = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if latestErr != nil {
		log.Warn("failed to load latest HRV reading, using fallback completion", logger.Err(latestErr))
		latestReading = nil
	}

	dashboard := analytics.Compute(analytics.Input{
		Today:             today,
		Location:          loc,
		CheckIns:          checkIns,
		TodayReading:      todayReading,
		LatestReading:     latestReading,
		LatestUnavailable: latestErr != nil,
	}, s.cfg.Options)
	dashboard.TinyPrompt = prompts.TinyPrompt(anchor)

	s.metrics.ObserveDashboard(string(dashboard.Completion.Band), time.Since(started))
	log.Debug("dashboard computed",
		logger.Date("today", today),
		logger.Int("streak", dashboard.Streak.Days),
		logger.Int("risk_count", dashboard.RiskCount),
		logger.String("readiness", string(dashboard.Readiness.Level)),
	)

	return &dashboard, nil
}
