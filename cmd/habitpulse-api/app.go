package main

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository/sqlstore"
	"github.com/JonnyWalker81/habitpulse/backend/pkg/supabase"
)

// devJWTSecret signs tokens outside production when no secret is configured
const devJWTSecret = "habitpulse-development-secret"

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	log := logger.New(logger.Config{
		Level:   logger.ParseLevel(cfg.Log.Level),
		Format:  cfg.Log.Format,
		Backend: cfg.Log.Backend,
		File: logger.FileConfig{
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logger.SetDefault(log)
	return log
}

func jwtSecret(cfg *config.Config, log logger.Logger) []byte {
	if cfg.Auth.JWTSecret != "" {
		return []byte(cfg.Auth.JWTSecret)
	}
	log.Warn("auth.jwt_secret is not set, using the development secret")
	return []byte(devJWTSecret)
}

// openStore opens the configured record store. SQL stores are migrated first
// when migrate is set; the Supabase schema is managed outside this binary.
func openStore(ctx context.Context, cfg *config.Config, migrate bool) (repository.Store, error) {
	log := logger.Ctx(ctx)

	if cfg.Store.Driver == config.DriverSupabase {
		log.Info("using supabase store", logger.String("url", cfg.Supabase.URL))
		client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		return repository.NewSupabaseStore(client), nil
	}

	store, err := sqlstore.Open(ctx, sqlstore.Dialect(cfg.Store.Driver), cfg.Store.DSN)
	if err != nil {
		return nil, err
	}
	log.Info("opened sql store", logger.String("driver", cfg.Store.Driver))

	if migrate {
		applied, err := store.Migrate(ctx)
		if err != nil {
			store.Close()
			return nil, err
		}
		log.Info("schema up to date", logger.Int("applied", applied))
	}
	return store, nil
}
