package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no local .env or config.yaml is read
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "America/New_York", cfg.TimeZone.Default)
	assert.Equal(t, 7, cfg.Analytics.TrendDays)
	assert.Equal(t, 3, cfg.Analytics.SmoothingWindow)
	assert.Equal(t, 730, cfg.Analytics.StreakLookbackDays)
	assert.Equal(t, 10000, cfg.Stats.DefaultIterations)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HABITPULSE_ANALYTICS_TREND_DAYS", "14")
	t.Setenv("HABITPULSE_LOG_BACKEND", "zerolog")
	t.Setenv("HABITPULSE_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Analytics.TrendDays)
	assert.Equal(t, "zerolog", cfg.Log.Backend)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HABITPULSE_TIMEZONE_DEFAULT=Europe/Berlin\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HABITPULSE_TIMEZONE_DEFAULT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.TimeZone.Default)
}

func TestLoadFile_YAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "habitpulse.yaml")
	yaml := `
store:
  driver: postgres
  dsn: postgres://localhost/habitpulse?sslmode=disable
timezone:
  default: America/Chicago
  overrides:
    user-1: Asia/Tokyo
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "America/Chicago", cfg.TimeZone.Default)
	assert.Equal(t, "Asia/Tokyo", cfg.TimeZone.Overrides["user-1"])
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080", Env: "development"},
			Log:       LogConfig{Level: "info", Format: "json", Backend: "slog"},
			Store:     StoreConfig{Driver: DriverSQLite, DSN: "test.db"},
			TimeZone:  TimeZoneConfig{Default: "UTC"},
			Analytics: AnalyticsConfig{TrendDays: 7, SmoothingWindow: 3, StreakLookbackDays: 730},
			Stats:     StatsConfig{DefaultIterations: 100},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Store.Driver = "mysql" }, true},
		{"sqlite without dsn", func(c *Config) { c.Store.DSN = "" }, true},
		{"supabase without url", func(c *Config) { c.Store.Driver = DriverSupabase }, true},
		{"supabase complete", func(c *Config) {
			c.Store.Driver = DriverSupabase
			c.Supabase = SupabaseConfig{URL: "https://x.supabase.co", ServiceKey: "key"}
		}, false},
		{"zero trend days", func(c *Config) { c.Analytics.TrendDays = 0 }, true},
		{"bad log backend", func(c *Config) { c.Log.Backend = "logrus" }, true},
		{"production without secret", func(c *Config) { c.Server.Env = "production" }, true},
		{"production with secret", func(c *Config) {
			c.Server.Env = "production"
			c.Auth.JWTSecret = "secret"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
