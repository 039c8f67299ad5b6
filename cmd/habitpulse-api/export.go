package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/dataset"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export check-ins as a training CSV",
	Long: `Write one row per check-in with the columns mood,status,hrv_rmssd,completed.
completed is 1 when the status is ok. Output ending in .gz or .zst is compressed.`,
	RunE: runExport,
}

var (
	exportOutput string
	exportUserID string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "checkins_dataset.csv", `Output file, "-" for stdout`)
	exportCmd.Flags().StringVar(&exportUserID, "user-id", "", "Only export this user's check-ins")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := logger.WithLogger(cmd.Context(), log)

	var out io.Writer = cmd.OutOrStdout()
	if exportOutput != "-" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		defer f.Close()
		out = f
	}

	n, err := exportCheckIns(ctx, cfg, out, dataset.CompressionFor(exportOutput), exportUserID)
	if err != nil {
		return err
	}

	log.Info("export complete", logger.String("output", exportOutput), logger.Int("rows", n))
	return nil
}

func exportCheckIns(ctx context.Context, cfg *config.Config, out io.Writer, c dataset.Compression, userID string) (int, error) {
	store, err := openStore(ctx, cfg, false)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	checkIns, err := store.CheckIns().ListForExport(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load check-ins: %w", err)
	}

	w, err := dataset.NewWriter(out, c)
	if err != nil {
		return 0, err
	}
	n, err := dataset.WriteCheckIns(w, checkIns)
	if err != nil {
		w.Close()
		return n, fmt.Errorf("failed to write csv: %w", err)
	}
	if err := w.Close(); err != nil {
		return n, fmt.Errorf("failed to flush output: %w", err)
	}
	return n, nil
}
