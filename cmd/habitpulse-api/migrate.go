package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long:  `Apply the embedded schema migrations to the configured SQL store.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if cfg.Store.Driver == config.DriverSupabase {
		return errors.New("migrations only apply to sql stores; manage the supabase schema with the supabase CLI")
	}

	ctx := logger.WithLogger(cmd.Context(), log)
	store, err := openStore(ctx, cfg, true)
	if err != nil {
		return err
	}
	return store.Close()
}
