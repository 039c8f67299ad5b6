package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/config"
	"github.com/JonnyWalker81/habitpulse/backend/internal/handlers"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/metrics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/middleware"
	"github.com/JonnyWalker81/habitpulse/backend/internal/prompts"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository"
	"github.com/JonnyWalker81/habitpulse/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

const shutdownTimeout = 5 * time.Second

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

// app holds the wired dependencies behind the router
type app struct {
	cfg      *config.Config
	log      logger.Logger
	store    repository.Store
	zones    *analytics.ZonePolicy
	clock    analytics.Clock
	assigner prompts.Assigner
	secret   []byte
	registry *prometheus.Registry
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := newLogger(cfg)
	log.Info("starting habitpulse api",
		logger.String("env", cfg.Server.Env),
		logger.String("store", cfg.Store.Driver),
		logger.String("version", handlers.Version),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	zones, err := analytics.NewZonePolicy(cfg.TimeZone.Default, cfg.TimeZone.Overrides)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg, true)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	a := &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		zones:    zones,
		clock:    analytics.SystemClock(),
		assigner: prompts.NewRandomAssigner(nil),
		secret:   jwtSecret(cfg, log),
	}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Info("gracefully stopped")
	return nil
}

// router wires services, handlers and middleware into a gin engine
func (a *app) router() *gin.Engine {
	var rec metrics.Recorder = metrics.Noop{}
	if a.registry != nil {
		rec = metrics.New(a.registry)
	}

	// Initialize services
	dashboardService := service.NewDashboardService(
		a.store.CheckIns(), a.store.HRV(), a.store.HabitAnchors(),
		a.zones, a.clock,
		service.DashboardConfig{
			Options: analytics.Options{
				TrendDays:       a.cfg.Analytics.TrendDays,
				SmoothingWindow: a.cfg.Analytics.SmoothingWindow,
				Coefficients:    analytics.DefaultCoefficients(),
			},
			StreakLookbackDays: a.cfg.Analytics.StreakLookbackDays,
		},
		rec,
	)
	checkInService := service.NewCheckInService(a.store.CheckIns(), a.zones, a.clock, rec)
	hrvService := service.NewHRVService(a.store.HRV(), a.clock, rec)
	habitService := service.NewHabitService(a.store.HabitAnchors(), a.assigner, a.zones, a.clock)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	checkInHandler := handlers.NewCheckInHandler(checkInService)
	hrvHandler := handlers.NewHRVHandler(hrvService)
	habitHandler := handlers.NewHabitHandler(habitService)

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(a.log))
	router.Use(middleware.Metrics(rec))
	router.Use(middleware.CORS(a.cfg.CORS.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(a.cfg.IsProduction()))

	var pinger handlers.Pinger
	if p, ok := a.store.(handlers.Pinger); ok {
		pinger = p
	}
	router.GET("/health", handlers.Health(a.cfg.Server.Env, pinger))

	if a.registry != nil {
		router.GET(a.cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/about", handlers.About)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(a.secret))
		if a.cfg.RateLimit.RequestsPerMinute > 0 {
			protected.Use(middleware.RateLimit(a.cfg.RateLimit.RequestsPerMinute))
		}
		{
			protected.GET("/dashboard", dashboardHandler.GetDashboard)

			// Check-in routes
			protected.POST("/checkins/today", checkInHandler.CheckInToday)
			protected.POST("/checkins", checkInHandler.UpsertCheckIn)
			protected.GET("/checkins", checkInHandler.ListCheckIns)
			protected.GET("/checkins/:id", checkInHandler.GetCheckIn)
			protected.PUT("/checkins/:id", checkInHandler.UpdateCheckIn)
			protected.DELETE("/checkins/:id", checkInHandler.DeleteCheckIn)

			// HRV routes
			protected.POST("/hrv", hrvHandler.CreateReading)
			protected.GET("/hrv", hrvHandler.ListReadings)

			// Habit anchor routes
			anchors := protected.Group("/habits/anchors")
			anchors.POST("", habitHandler.CreateAnchor)
			anchors.GET("", habitHandler.ListAnchors)
			anchors.GET("/:id", habitHandler.GetAnchor)
			anchors.PUT("/:id", habitHandler.UpdateAnchor)
			anchors.POST("/:id/toggle", habitHandler.ToggleAnchor)
			anchors.DELETE("/:id", habitHandler.DeleteAnchor)
		}
	}

	return router
}
