package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habitpulse/backend/internal/apierror"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// Version is reported by /about and /health; set at build time with -ldflags.
var Version = "dev"

var aboutResponse = models.AboutResponse{
	Name: "habitpulse",
	Methods: []string{
		"Streak: consecutive calendar days with a check-in, counted back from today in your time zone.",
		"Trend: the last 7 days of mood and status, with a 3-day trailing moving average of mood.",
		"Risk days: days marked warn or block, or with a mood of 2 or lower.",
		"Readiness: today's RMSSD only. 60 ms or more is high, 40 to 60 ms moderate, below 40 ms low.",
		"Completion odds: a hand-tuned logistic formula over recent check-ins, RMSSD and resting heart rate. It is illustrative, not a fitted model.",
	},
	References: []models.Reference{
		{
			Key:     "tiny-habits",
			Title:   "Tiny Habits: The Small Changes That Change Everything (Fogg, 2019)",
			Summary: "Anchor a tiny behavior to an existing routine and celebrate immediately to wire in the habit.",
			UsedFor: "Habit recipes and dashboard prompts",
		},
		{
			Key:     "hrv",
			Title:   "An Overview of Heart Rate Variability Metrics and Norms (Shaffer & Ginsberg, 2017)",
			Summary: "Heart rate variability (HRV) measures such as RMSSD reflect parasympathetic activity and short-term recovery.",
			UsedFor: "Readiness labels and HRV tips",
		},
		{
			Key:     "isl",
			Title:   "An Introduction to Statistical Learning (James et al., 2021)",
			Summary: "Logistic regression maps a linear combination of features to a probability through the sigmoid function.",
			UsedFor: "Completion odds, permutation tests and variance inflation checks",
		},
	},
}

// About handles GET /api/v1/about
func About(c *gin.Context) {
	resp := aboutResponse
	resp.Version = Version
	c.JSON(http.StatusOK, resp)
}

// Pinger is implemented by stores that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles GET /health. A nil pinger only reports liveness.
func Health(env string, pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			if err := pinger.Ping(c.Request.Context()); err != nil {
				logger.Ctx(c.Request.Context()).Warn("store ping failed", logger.Err(err))
				apierror.WriteProblem(c, apierror.NewServiceUnavailableError(apierror.GetRequestID(c), 5))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": env, "version": Version})
	}
}
