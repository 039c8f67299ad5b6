package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// CheckInRepository defines data access for daily check-ins
type CheckInRepository interface {
	// GetByID returns the check-in with id or ErrNotFound
	GetByID(ctx context.Context, id string) (*models.CheckIn, error)
	// GetByDate returns the user's check-in for a calendar date or ErrNotFound
	GetByDate(ctx context.Context, userID string, date time.Time) (*models.CheckIn, error)
	// ListByDateRange returns the user's check-ins dated within [start, end], ascending by date
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CheckIn, error)
	// ListForExport returns every check-in of userID, or of all users when userID is empty
	ListForExport(ctx context.Context, userID string) ([]models.CheckIn, error)
	// Upsert creates the (UserID, LocalDate) check-in from base with fields applied, or
	// applies fields to the existing one. created reports which happened.
	Upsert(ctx context.Context, base *models.CheckIn, fields models.CheckInFields) (rec *models.CheckIn, created bool, err error)
	// Update replaces the mutable columns of an existing check-in
	Update(ctx context.Context, checkIn *models.CheckIn) (*models.CheckIn, error)
	Delete(ctx context.Context, id string) error
}

// HRVRepository defines data access for HRV readings
type HRVRepository interface {
	Create(ctx context.Context, reading *models.HRVReading) (*models.HRVReading, error)
	// ListByUser returns the user's readings newest first; limit <= 0 means no limit
	ListByUser(ctx context.Context, userID string, limit int) ([]models.HRVReading, error)
	// GetLatest returns the user's most recent reading, or nil when there is none
	GetLatest(ctx context.Context, userID string) (*models.HRVReading, error)
	// GetLatestBetween returns the most recent reading measured in [start, end), or nil
	GetLatestBetween(ctx context.Context, userID string, start, end time.Time) (*models.HRVReading, error)
	// Update replaces the measurement columns of reading.ID or returns ErrNotFound
	Update(ctx context.Context, reading *models.HRVReading) (*models.HRVReading, error)
}

// HabitAnchorRepository defines data access for habit recipes
type HabitAnchorRepository interface {
	Create(ctx context.Context, anchor *models.HabitAnchor) (*models.HabitAnchor, error)
	GetByID(ctx context.Context, id string) (*models.HabitAnchor, error)
	// ListByUser returns the user's recipes newest first
	ListByUser(ctx context.Context, userID string) ([]models.HabitAnchor, error)
	// GetLatestActive returns the newest active recipe, or nil when there is none
	GetLatestActive(ctx context.Context, userID string) (*models.HabitAnchor, error)
	Update(ctx context.Context, anchor *models.HabitAnchor) (*models.HabitAnchor, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles the repositories of one backend
type Store interface {
	CheckIns() CheckInRepository
	HRV() HRVRepository
	HabitAnchors() HabitAnchorRepository
	Close() error
}
