package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/dataset"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
)

var importHRVCmd = &cobra.Command{
	Use:   "import-hrv <csv_path>",
	Short: "Import per-day HRV metrics from CSV",
	Long: `Import RMSSD, SDNN and resting heart rate from a CSV with the columns
user_id,date,rmssd,sdnn,resting_hr. Without a user_id column pass --user-id.
Each row becomes one reading at local noon of its date. A day that already has a
reading gets that reading's values replaced, so a corrected file can be re-imported.
Malformed rows are skipped. Gzip and zstd input is detected.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportHRV,
}

var importUserID string

func init() {
	importHRVCmd.Flags().StringVar(&importUserID, "user-id", "", "User to apply rows to when the file has no user_id column")
}

// importResult counts the outcome of an HRV import
type importResult struct {
	Created int
	Updated int
	Skipped []dataset.RowError
}

func runImportHRV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := logger.WithLogger(cmd.Context(), log)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}
	defer f.Close()

	zones, err := analytics.NewZonePolicy(cfg.TimeZone.Default, cfg.TimeZone.Overrides)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg, cfg.Store.Driver != config.DriverSupabase)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := importHRV(ctx, store.HRV(), zones, f, importUserID)
	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		log.Warn("skipped row", logger.Int("line", s.Line), logger.Err(s.Err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "HRV import complete: %d created, %d updated, %d skipped\n",
		res.Created, res.Updated, len(res.Skipped))
	return nil
}

func importHRV(ctx context.Context, repo repository.HRVRepository, zones *analytics.ZonePolicy, r io.Reader, defaultUserID string) (*importResult, error) {
	in, err := dataset.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	records, skipped, err := dataset.ParseHRV(in, defaultUserID)
	if err != nil {
		return nil, err
	}

	res := &importResult{Skipped: skipped}
	for _, rec := range records {
		loc := zones.Location(rec.UserID)
		start, end := analytics.DayBounds(rec.Date, loc)

		existing, err := repo.GetLatestBetween(ctx, rec.UserID, start, end)
		if err != nil {
			return res, fmt.Errorf("line %d: failed to check existing readings: %w", rec.Line, err)
		}
		reading := rec.Reading(loc)
		if existing != nil {
			// keep the reading's identity and time, replace what was measured
			reading.ID = existing.ID
			reading.MeasuredAt = existing.MeasuredAt
			if _, err := repo.Update(ctx, reading); err != nil {
				return res, fmt.Errorf("line %d: %w", rec.Line, err)
			}
			res.Updated++
			continue
		}

		if _, err := repo.Create(ctx, reading); err != nil {
			return res, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		res.Created++
	}
	return res, nil
}
