package service

import (
	"context"
	"errors"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

var (
	// ErrNotFound is returned for missing records and for records owned by another user
	ErrNotFound = repository.ErrNotFound
	// ErrInvalidInput wraps request validation failures detected below the handlers
	ErrInvalidInput = errors.New("invalid input")
)

// DashboardService assembles the dashboard of a user
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*analytics.Dashboard, error)
}

// CheckInService defines the interface for daily check-in business logic
type CheckInService interface {
	// GetOrCreateToday returns today's check-in, creating a default one when absent
	GetOrCreateToday(ctx context.Context, userID string) (*models.CheckIn, bool, error)
	// UpsertToday creates today's check-in or applies req to the existing one
	UpsertToday(ctx context.Context, userID string, req *models.CheckInRequest) (*models.CheckIn, bool, error)
	// ListRecent returns the check-ins of the last days calendar days, oldest first
	ListRecent(ctx context.Context, userID string, days int) ([]models.CheckIn, error)
	GetCheckIn(ctx context.Context, userID, id string) (*models.CheckIn, error)
	UpdateCheckIn(ctx context.Context, userID, id string, req *models.UpdateCheckInRequest) (*models.CheckIn, error)
	DeleteCheckIn(ctx context.Context, userID, id string) error
}

// HRVService defines the interface for HRV reading business logic
type HRVService interface {
	CreateReading(ctx context.Context, userID string, req *models.CreateHRVRequest) (*models.HRVReading, error)
	ListReadings(ctx context.Context, userID string, limit int) ([]models.HRVReading, error)
}

// HabitService defines the interface for habit recipe business logic
type HabitService interface {
	CreateAnchor(ctx context.Context, userID string, req *models.CreateHabitAnchorRequest) (*HabitAnchorDetail, error)
	GetAnchor(ctx context.Context, userID, id string) (*HabitAnchorDetail, error)
	ListAnchors(ctx context.Context, userID string) ([]HabitAnchorDetail, error)
	UpdateAnchor(ctx context.Context, userID, id string, req *models.UpdateHabitAnchorRequest) (*HabitAnchorDetail, error)
	// ToggleAnchor flips the recipe's active flag
	ToggleAnchor(ctx context.Context, userID, id string) (*HabitAnchorDetail, error)
	DeleteAnchor(ctx context.Context, userID, id string) error
}
