package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	s, err := Open(ctx, DialectSQLite, filepath.Join(t.TempDir(), "habitpulse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Migrate(ctx)
	require.NoError(t, err)
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	applied, err := s.Migrate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, applied)
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: DialectPostgres}
	lite := &Store{dialect: DialectSQLite}

	q := `SELECT * FROM checkins WHERE user_id = ? AND local_date >= ?`
	assert.Equal(t, `SELECT * FROM checkins WHERE user_id = $1 AND local_date >= $2`, pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
}

func TestOpenRejectsUnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), Dialect("mysql"), "")
	assert.Error(t, err)
}

func TestCheckInUpsertCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).CheckIns()
	day := date(2025, time.March, 12)

	first, created, err := repo.Upsert(ctx, &models.CheckIn{UserID: "u1", LocalDate: day, Source: "web"}, models.CheckInFields{})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.StatusOK, first.Status)
	assert.Nil(t, first.Mood)
	assert.Equal(t, "web", first.Source)

	warn := models.StatusWarn
	second, created, err := repo.Upsert(ctx,
		&models.CheckIn{UserID: "u1", LocalDate: day, Source: "api"},
		models.CheckInFields{Status: &warn, Mood: ptr(2)})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.StatusWarn, second.Status)
	assert.Equal(t, 2, *second.Mood)
	assert.Equal(t, "web", second.Source, "source is only set on create")

	all, err := repo.ListByDateRange(ctx, "u1", day, day)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCheckInGetOrCreateDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).CheckIns()
	day := date(2025, time.March, 12)
	block := models.StatusBlock

	_, _, err := repo.Upsert(ctx, &models.CheckIn{UserID: "u1", LocalDate: day}, models.CheckInFields{Status: &block, Note: ptr("sick")})
	require.NoError(t, err)

	got, created, err := repo.Upsert(ctx, &models.CheckIn{UserID: "u1", LocalDate: day}, models.CheckInFields{})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.StatusBlock, got.Status)
	assert.Equal(t, "sick", got.Note)
}

func TestCheckInListByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).CheckIns()

	for _, d := range []int{14, 10, 12, 9} {
		_, _, err := repo.Upsert(ctx, &models.CheckIn{UserID: "u1", LocalDate: date(2025, time.March, d)}, models.CheckInFields{})
		require.NoError(t, err)
	}
	_, _, err := repo.Upsert(ctx, &models.CheckIn{UserID: "u2", LocalDate: date(2025, time.March, 11)}, models.CheckInFields{})
	require.NoError(t, err)

	got, err := repo.ListByDateRange(ctx, "u1", date(2025, time.March, 10), date(2025, time.March, 14))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, date(2025, time.March, 10), got[0].LocalDate)
	assert.Equal(t, date(2025, time.March, 12), got[1].LocalDate)
	assert.Equal(t, date(2025, time.March, 14), got[2].LocalDate)

	everyone, err := repo.ListForExport(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everyone, 5)
}

func TestCheckInUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).CheckIns()

	c, _, err := repo.Upsert(ctx, &models.CheckIn{UserID: "u1", LocalDate: date(2025, time.March, 1)},
		models.CheckInFields{Mood: ptr(4), HRVRMSSD: ptr(55.5)})
	require.NoError(t, err)

	c.Mood = nil
	c.Note = "cleared mood"
	updated, err := repo.Update(ctx, c)
	require.NoError(t, err)
	assert.Nil(t, updated.Mood)
	assert.Equal(t, 55.5, *updated.HRVRMSSD)
	assert.Equal(t, "cleared mood", updated.Note)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), repository.ErrNotFound)

	_, err = repo.Update(ctx, &models.CheckIn{ID: "missing", Status: models.StatusOK})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHRVLatest(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).HRV()

	none, err := repo.GetLatest(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	readings := []models.HRVReading{
		{UserID: "u1", MeasuredAt: time.Date(2025, time.March, 10, 7, 0, 0, 0, ny), RMSSDms: ptr(48.0)},
		{UserID: "u1", MeasuredAt: time.Date(2025, time.March, 12, 6, 30, 0, 0, ny), RMSSDms: ptr(62.0), RestingHR: ptr(54.0)},
		{UserID: "u1", MeasuredAt: time.Date(2025, time.March, 12, 21, 0, 0, 0, ny), SDNNms: ptr(70.0)},
		{UserID: "u2", MeasuredAt: time.Date(2025, time.March, 13, 7, 0, 0, 0, ny), RMSSDms: ptr(30.0)},
	}
	for i := range readings {
		_, err := repo.Create(ctx, &readings[i])
		require.NoError(t, err)
	}

	latest, err := repo.GetLatest(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Nil(t, latest.RMSSDms)
	assert.Equal(t, 70.0, *latest.SDNNms)

	start := time.Date(2025, time.March, 12, 0, 0, 0, 0, ny)
	end := time.Date(2025, time.March, 13, 0, 0, 0, 0, ny)
	onDay, err := repo.GetLatestBetween(ctx, "u1", start, end)
	require.NoError(t, err)
	require.NotNil(t, onDay)
	assert.True(t, readings[2].MeasuredAt.Equal(onDay.MeasuredAt))

	earlier, err := repo.GetLatestBetween(ctx, "u1", start.AddDate(0, 0, -1), start)
	require.NoError(t, err)
	assert.Nil(t, earlier)

	list, err := repo.ListByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].MeasuredAt.After(list[1].MeasuredAt))
}

func TestHRVUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).HRV()

	noon := time.Date(2025, time.March, 3, 17, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &models.HRVReading{UserID: "u1", MeasuredAt: noon, RMSSDms: ptr(52.0), Notes: "imported"})
	require.NoError(t, err)

	created.RMSSDms = ptr(58.0)
	created.RestingHR = ptr(55.0)
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 58.0, *updated.RMSSDms)
	assert.Equal(t, 55.0, *updated.RestingHR)
	assert.True(t, noon.Equal(updated.MeasuredAt))

	list, err := repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.Update(ctx, &models.HRVReading{ID: "missing", MeasuredAt: noon})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHabitAnchorLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).HabitAnchors()

	none, err := repo.GetLatestActive(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	a, err := repo.Create(ctx, &models.HabitAnchor{
		UserID:        "u1",
		AnchorAction:  "pour my coffee",
		TinyBehavior:  "stretch for 10 seconds",
		IsActive:      true,
		PromptVariant: models.PromptVariantB,
	})
	require.NoError(t, err)

	active, err := repo.GetLatestActive(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, a.ID, active.ID)
	assert.Equal(t, models.PromptVariantB, active.PromptVariant)

	a.IsActive = false
	a.Celebration = "fist pump"
	updated, err := repo.Update(ctx, a)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "fist pump", updated.Celebration)

	none, err = repo.GetLatestActive(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
