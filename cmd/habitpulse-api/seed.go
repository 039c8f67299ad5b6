package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/middleware"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/prompts"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
	"github.com/JonnyWalker81/habitpulse/backend/internal/service"
)

// SourceSeed tags generated demo check-ins
const SourceSeed = "seed"

// demoUserID is stable across runs so repeated seeding tops up the same user
var demoUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("habitpulse:user:demo")).String()

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo check-ins",
	Long: `Create about ten days of randomized check-ins and a habit recipe for the demo user,
then print a bearer token for it. Existing check-ins are left untouched.`,
	RunE: runSeed,
}

var (
	seedDays     int
	seedUserID   string
	seedSeed     uint64
	seedTokenTTL time.Duration
)

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 10, "Number of days ending today to seed")
	seedCmd.Flags().StringVar(&seedUserID, "user-id", "", "User to seed (default the demo user)")
	seedCmd.Flags().Uint64Var(&seedSeed, "seed", 0, "Random seed; 0 picks one")
	seedCmd.Flags().DurationVar(&seedTokenTTL, "token-ttl", 30*24*time.Hour, "Lifetime of the printed token")
}

var (
	seedStatuses = []models.Status{models.StatusOK, models.StatusOK, models.StatusWarn, models.StatusBlock}
	seedMoods    = []*int{nil, ptr(2), ptr(3), ptr(4), ptr(5)}
	seedRMSSD    = []*float64{nil, ptr(35.0), ptr(50.0), ptr(70.0)}
)

func ptr[T any](v T) *T { return &v }

func pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := logger.WithLogger(cmd.Context(), log)

	userID := seedUserID
	if userID == "" {
		userID = demoUserID
	}
	seed := seedSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	zones, err := analytics.NewZonePolicy(cfg.TimeZone.Default, cfg.TimeZone.Overrides)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg, cfg.Store.Driver != config.DriverSupabase)
	if err != nil {
		return err
	}
	defer store.Close()

	clock := analytics.SystemClock()
	created, err := seedCheckIns(ctx, store.CheckIns(), rng, userID, zones.Today(clock, userID), seedDays)
	if err != nil {
		return err
	}

	habits := service.NewHabitService(store.HabitAnchors(), prompts.NewRandomAssigner(rng), zones, clock)
	anchors, err := habits.ListAnchors(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list habit recipes: %w", err)
	}
	if len(anchors) == 0 {
		_, err := habits.CreateAnchor(ctx, userID, &models.CreateHabitAnchorRequest{
			AnchorAction: "After I pour my morning coffee",
			TinyBehavior: "I will take three slow breaths",
			Celebration:  "Smile",
		})
		if err != nil {
			return fmt.Errorf("failed to create habit recipe: %w", err)
		}
	}

	token, err := middleware.IssueToken(jwtSecret(cfg, log), userID, seedTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("seeded demo data",
		logger.String("user_id", userID),
		logger.Int("created", created),
		logger.Int("days", seedDays),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "user_id: %s\ntoken: %s\n", userID, token)
	return nil
}

// seedCheckIns creates a randomized check-in for each of the days ending at
// today that has none yet, returning how many were created.
func seedCheckIns(ctx context.Context, repo repository.CheckInRepository, rng *rand.Rand, userID string, today time.Time, days int) (int, error) {
	created := 0
	for _, day := range analytics.Days(today, days) {
		base := &models.CheckIn{
			UserID:      userID,
			LocalDate:   day,
			CheckedInAt: day.Add(9 * time.Hour),
			Status:      pick(rng, seedStatuses),
			Mood:        pick(rng, seedMoods),
			HRVRMSSD:    pick(rng, seedRMSSD),
			Source:      SourceSeed,
		}
		_, isNew, err := repo.Upsert(ctx, base, models.CheckInFields{})
		if err != nil {
			return created, fmt.Errorf("failed to seed check-in for %s: %w", analytics.DateKey(day), err)
		}
		if isNew {
			created++
		}
	}
	return created, nil
}
