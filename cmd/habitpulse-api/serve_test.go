package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/middleware"
	"github.com/JonnyWalker81/habitpulse/backend/internal/prompts"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository/sqlstore"
)

var testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

const testSecret = "test-secret"

func newSeedRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	ctx := context.Background()

	s, err := sqlstore.Open(ctx, sqlstore.DialectSQLite, filepath.Join(t.TempDir(), "habitpulse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Migrate(ctx)
	require.NoError(t, err)
	return s
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	zones, err := analytics.NewZonePolicy("America/New_York", nil)
	require.NoError(t, err)

	return &app{
		cfg: &config.Config{
			Server:    config.ServerConfig{Port: "8080", Env: "test"},
			Analytics: config.AnalyticsConfig{TrendDays: 7, SmoothingWindow: 3, StreakLookbackDays: 30},
			Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
			RateLimit: config.RateLimitConfig{RequestsPerMinute: 100},
		},
		log:      logger.Nop(),
		store:    newTestStore(t),
		zones:    zones,
		clock:    analytics.FixedClock{T: testNow},
		assigner: prompts.FixedAssigner("A"),
		secret:   []byte(testSecret),
		registry: prometheus.NewRegistry(),
	}
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterHealth(t *testing.T) {
	router := newTestApp(t).router()

	w := doRequest(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouterRequiresAuth(t *testing.T) {
	router := newTestApp(t).router()

	w := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/about", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterCheckInFlow(t *testing.T) {
	router := newTestApp(t).router()
	token, err := middleware.IssueToken([]byte(testSecret), "user-1", time.Hour)
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodPost, "/api/v1/checkins", token, map[string]any{"status": "ok", "mood": 4})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/api/v1/checkins", token, map[string]any{"mood": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dash analytics.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, "2025-03-12", dash.Today)
	assert.Equal(t, 1, dash.Streak.Days)
	assert.Len(t, dash.Trend, 7)

	w = doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "habitpulse_http_requests_total")
	assert.Contains(t, w.Body.String(), "habitpulse_dashboard")
}

func TestImportHRV(t *testing.T) {
	store := newTestStore(t)
	zones, err := analytics.NewZonePolicy("America/New_York", nil)
	require.NoError(t, err)
	ctx := context.Background()

	input := strings.Join([]string{
		"date,rmssd,sdnn,resting_hr",
		"2025-03-01,45,60,58",
		"2025-03-02,bad,,",
		"2025-03-03,52,,",
	}, "\n")

	res, err := importHRV(ctx, store.HRV(), zones, strings.NewReader(input), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].Line)

	latest, err := store.HRV().GetLatest(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC), latest.MeasuredAt.UTC())
	assert.Equal(t, 52.0, *latest.RMSSDms)

	// a corrected file replaces the day's values instead of adding readings
	corrected := strings.Replace(input, "2025-03-03,52,,", "2025-03-03,58,71,55", 1)
	res, err = importHRV(ctx, store.HRV(), zones, strings.NewReader(corrected), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 2, res.Updated)

	latest, err = store.HRV().GetLatest(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 58.0, *latest.RMSSDms)
	assert.Equal(t, 55.0, *latest.RestingHR)
	assert.Equal(t, time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC), latest.MeasuredAt.UTC())

	all, err := store.HRV().ListByUser(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSeedCheckInsDoesNotOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	created, err := seedCheckIns(ctx, store.CheckIns(), newSeedRand(1), "demo", today, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, created)

	checkIns, err := store.CheckIns().ListByDateRange(ctx, "demo", today.AddDate(0, 0, -9), today)
	require.NoError(t, err)
	require.Len(t, checkIns, 10)
	for _, c := range checkIns {
		assert.True(t, c.Status.Valid())
		assert.Equal(t, SourceSeed, c.Source)
	}

	created, err = seedCheckIns(ctx, store.CheckIns(), newSeedRand(2), "demo", today, 12)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestExportCheckInsFromStore(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, DSN: filepath.Join(dir, "export.db")}}
	ctx := context.Background()

	store, err := openStore(ctx, cfg, true)
	require.NoError(t, err)
	_, err = seedCheckIns(ctx, store.CheckIns(), newSeedRand(3), "demo", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), 5)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	n, err := exportCheckIns(ctx, cfg, &buf, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "mood,status,hrv_rmssd,completed", lines[0])
	assert.Len(t, lines, 6)
}
