package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/dataset"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Offline statistics over exported check-ins",
}

var permTestCmd = &cobra.Command{
	Use:   "permtest",
	Short: "Permutation test on completion rates",
	Long: `Compare completion proportions of two groups with a two-sided permutation test.
Groups come either from explicit counts (--a-successes, --a-total, --b-successes,
--b-total) or from a dataset split at --threshold RMSSD ms (high vs low HRV days).`,
	RunE: runPermTest,
}

var vifCmd = &cobra.Command{
	Use:   "vif",
	Short: "Variance inflation of mood and hrv_rmssd",
	Long:  `Report the approximate variance inflation factor of the mood and hrv_rmssd columns.`,
	RunE:  runVIF,
}

var (
	statsInput  string
	statsUserID string

	permIterations int
	permSeed       uint64
	permThreshold  float64
	permA          stats.ProportionSample
	permB          stats.ProportionSample
)

func init() {
	statsCmd.PersistentFlags().StringVarP(&statsInput, "input", "i", "", "Dataset CSV from export; empty reads the configured store")
	statsCmd.PersistentFlags().StringVar(&statsUserID, "user-id", "", "Restrict store reads to one user")

	permTestCmd.Flags().IntVarP(&permIterations, "iterations", "n", 0, "Shuffles to run (default stats.default_iterations)")
	permTestCmd.Flags().Uint64Var(&permSeed, "seed", 0, "Random seed; 0 picks one")
	permTestCmd.Flags().Float64Var(&permThreshold, "threshold", 50, "RMSSD ms splitting high from low HRV days")
	permTestCmd.Flags().IntVar(&permA.Successes, "a-successes", 0, "Successes in group A")
	permTestCmd.Flags().IntVar(&permA.Total, "a-total", 0, "Size of group A")
	permTestCmd.Flags().IntVar(&permB.Successes, "b-successes", 0, "Successes in group B")
	permTestCmd.Flags().IntVar(&permB.Total, "b-total", 0, "Size of group B")

	statsCmd.AddCommand(permTestCmd)
	statsCmd.AddCommand(vifCmd)
}

// loadRows reads the dataset from path, or builds it from the store when path is empty
func loadRows(ctx context.Context, cfg *config.Config, path, userID string) ([]dataset.Row, error) {
	if path == "" {
		var buf bytes.Buffer
		if _, err := exportCheckIns(ctx, cfg, &buf, dataset.CompressionNone, userID); err != nil {
			return nil, err
		}
		return dataset.ReadRows(&buf)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := dataset.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return dataset.ReadRows(in)
}

func runPermTest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := logger.WithLogger(cmd.Context(), log)

	a, b := permA, permB
	labelA, labelB := "A", "B"
	if !cmd.Flags().Changed("a-total") && !cmd.Flags().Changed("b-total") {
		rows, err := loadRows(ctx, cfg, statsInput, statsUserID)
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}
		a, b = dataset.SplitByHRV(rows, permThreshold)
		labelA = fmt.Sprintf("rmssd >= %g", permThreshold)
		labelB = fmt.Sprintf("rmssd < %g", permThreshold)
	}
	if !a.Valid() || !b.Valid() {
		return errors.New("both groups need at least one observation with 0 <= successes <= total")
	}

	iters := permIterations
	if iters <= 0 {
		iters = cfg.Stats.DefaultIterations
	}
	seed := permSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	p := stats.PermutationTest(rand.New(rand.NewPCG(seed, seed)), a, b, iters)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s %d/%d (%.3f)\n", labelA, a.Successes, a.Total, a.Proportion())
	fmt.Fprintf(out, "%-16s %d/%d (%.3f)\n", labelB, b.Successes, b.Total, b.Proportion())
	fmt.Fprintf(out, "p-value          %.4f (%d iterations, seed %d)\n", p, iters, seed)
	return nil
}

func runVIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := logger.WithLogger(cmd.Context(), log)

	rows, err := loadRows(ctx, cfg, statsInput, statsUserID)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	mood, hrv := dataset.NumericColumns(rows)
	if len(mood) == 0 {
		return errors.New("no rows with both mood and hrv_rmssd")
	}
	vif := stats.QuickVIF([][]float64{mood, hrv})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rows       %d\n", len(mood))
	fmt.Fprintf(out, "mood       %.3f\n", vif[0])
	fmt.Fprintf(out, "hrv_rmssd  %.3f\n", vif[1])
	return nil
}
