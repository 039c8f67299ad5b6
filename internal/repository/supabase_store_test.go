package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/pkg/supabase"
)

const existingCheckIn = `[{
	"id": "c1",
	"user_id": "u1",
	"local_date": "2025-03-12",
	"checked_in_at": "2025-03-12T13:00:00+00:00",
	"status": "warn",
	"mood": 2,
	"hrv_rmssd": null,
	"note": "",
	"tags": "",
	"source": "web",
	"created_at": "2025-03-12T13:00:00+00:00",
	"updated_at": "2025-03-12T14:00:00+00:00"
}]`

func newSupabaseStore(t *testing.T, handler http.HandlerFunc) *SupabaseStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabaseStore(supabase.NewClient(srv.URL, "service-key"))
}

func TestSupabaseCheckInUpsertExisting(t *testing.T) {
	var calls []string
	store := newSupabaseStore(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method)
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPatch:
			assert.Equal(t, "eq.2025-03-12", r.URL.Query().Get("local_date"))
			_, _ = w.Write([]byte(existingCheckIn))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	warn := models.StatusWarn
	got, created, err := store.CheckIns().Upsert(context.Background(),
		&models.CheckIn{UserID: "u1", LocalDate: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)},
		models.CheckInFields{Status: &warn})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []string{http.MethodPost, http.MethodPatch}, calls)
	assert.Equal(t, models.StatusWarn, got.Status)
	assert.Equal(t, 2, *got.Mood)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), got.LocalDate)
}

func TestSupabaseCheckInUpsertCreated(t *testing.T) {
	store := newSupabaseStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(existingCheckIn))
	})

	_, created, err := store.CheckIns().Upsert(context.Background(),
		&models.CheckIn{UserID: "u1", LocalDate: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)},
		models.CheckInFields{})

	require.NoError(t, err)
	assert.True(t, created)
}

func TestSupabaseGetByIDNotFound(t *testing.T) {
	store := newSupabaseStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := store.CheckIns().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	latest, err := store.HRV().GetLatest(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Nil(t, latest)

	anchor, err := store.HabitAnchors().GetLatestActive(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Nil(t, anchor)
}

func TestSupabaseHRVUpdate(t *testing.T) {
	store := newSupabaseStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.h1", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`[{"id":"h1","user_id":"u1","measured_at":"2025-03-03T17:00:00+00:00",
			"rmssd_ms":58,"notes":"imported","created_at":"2025-03-03T17:00:00+00:00"}]`))
	})

	got, err := store.HRV().Update(context.Background(), &models.HRVReading{
		ID:         "h1",
		MeasuredAt: time.Date(2025, time.March, 3, 17, 0, 0, 0, time.UTC),
		RMSSDms:    ptrTo(58.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 58.0, *got.RMSSDms)
}

func TestSupabaseHRVUpdateMissing(t *testing.T) {
	store := newSupabaseStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := store.HRV().Update(context.Background(), &models.HRVReading{ID: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func ptrTo[T any](v T) *T { return &v }
