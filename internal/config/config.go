package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Store     StoreConfig     `mapstructure:"store"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Auth      AuthConfig      `mapstructure:"auth"`
	TimeZone  TimeZoneConfig  `mapstructure:"timezone"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Stats     StatsConfig     `mapstructure:"stats"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required|isNumber"`
	Env  string `mapstructure:"env" validate:"required|in:development,staging,production,test"`
}

// LogConfig selects the logger backend and output
type LogConfig struct {
	Level   string        `mapstructure:"level" validate:"in:debug,info,warn,error"`
	Format  string        `mapstructure:"format" validate:"in:json,text"`
	Backend string        `mapstructure:"backend" validate:"in:slog,zerolog"`
	File    LogFileConfig `mapstructure:"file"`
}

// LogFileConfig enables rotating file output when Path is set
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min:0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min:0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min:0"`
	Compress   bool   `mapstructure:"compress"`
}

// StoreConfig selects the record store
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required|in:sqlite,postgres,supabase"`
	DSN    string `mapstructure:"dsn"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// AuthConfig holds the HS256 secret used to verify bearer tokens
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// TimeZoneConfig is the default IANA zone plus per-user overrides
type TimeZoneConfig struct {
	Default   string            `mapstructure:"default" validate:"required"`
	Overrides map[string]string `mapstructure:"overrides"`
}

// AnalyticsConfig tunes the dashboard computation
type AnalyticsConfig struct {
	TrendDays          int `mapstructure:"trend_days" validate:"required|min:1|max:90"`
	SmoothingWindow    int `mapstructure:"smoothing_window" validate:"required|min:1|max:30"`
	StreakLookbackDays int `mapstructure:"streak_lookback_days" validate:"required|min:1"`
}

// StatsConfig holds defaults of the offline statistics tools
type StatsConfig struct {
	DefaultIterations int `mapstructure:"default_iterations" validate:"required|min:1"`
}

// MetricsConfig toggles the Prometheus collectors and /metrics endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// CORSConfig lists the allowed browser origins; "*." prefixes match subdomains
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig bounds requests per client
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"min:0"`
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.backend", "slog")
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.max_age_days", 28)

	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.dsn", "habitpulse.db")

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("timezone.default", "America/New_York")

	v.SetDefault("analytics.trend_days", 7)
	v.SetDefault("analytics.smoothing_window", 3)
	v.SetDefault("analytics.streak_lookback_days", 730)

	v.SetDefault("stats.default_iterations", 10000)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("rate_limit.requests_per_minute", 120)
}

// Load reads configuration from .env, environment variables and an optional
// config.yaml in the working directory or ./config.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path searches
// the default locations.
func LoadFile(path string) (*Config, error) {
	// A missing .env is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HABITPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables used by hosting platforms
	_ = v.BindEnv("server.port", "HABITPULSE_SERVER_PORT", "PORT")
	_ = v.BindEnv("store.dsn", "HABITPULSE_STORE_DSN", "DATABASE_URL")
	_ = v.BindEnv("supabase.url", "HABITPULSE_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", "HABITPULSE_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks field rules and the settings each store driver requires
func (c *Config) Validate() error {
	sections := []any{
		&c.Server, &c.Log, &c.Log.File, &c.Store, &c.TimeZone,
		&c.Analytics, &c.Stats, &c.RateLimit,
	}
	for _, s := range sections {
		v := validate.Struct(s)
		if !v.Validate() {
			return fmt.Errorf("invalid configuration: %s", v.Errors.One())
		}
	}

	switch c.Store.Driver {
	case DriverSupabase:
		if c.Supabase.URL == "" {
			return fmt.Errorf("SUPABASE_URL is required for the supabase store")
		}
		if c.Supabase.ServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required for the supabase store")
		}
	default:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s store", c.Store.Driver)
		}
	}

	if c.IsProduction() && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required in production")
	}
	return nil
}
