package repository

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/habitpulse/backend/pkg/supabase"
)

// SupabaseStore serves the repositories from Supabase tables over PostgREST
type SupabaseStore struct {
	client *supabase.Client
}

var _ Store = (*SupabaseStore)(nil)

// NewSupabaseStore creates a Store backed by client
func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) CheckIns() CheckInRepository {
	return &checkInRepository{client: s.client}
}

func (s *SupabaseStore) HRV() HRVRepository {
	return &hrvRepository{client: s.client}
}

func (s *SupabaseStore) HabitAnchors() HabitAnchorRepository {
	return &habitAnchorRepository{client: s.client}
}

// Close is a no-op; the HTTP client holds no resources that need releasing
func (s *SupabaseStore) Close() error { return nil }

// decodeRows unmarshals a PostgREST JSON array
func decodeRows[T any](body []byte) ([]T, error) {
	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return rows, nil
}

// decodeFirst returns the first row or ErrNotFound
func decodeFirst[T any](body []byte) (*T, error) {
	rows, err := decodeRows[T](body)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
