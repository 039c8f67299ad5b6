package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habitpulse/backend/internal/metrics"
)

// Metrics records request counts and latency per matched route
func Metrics(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// unmatched paths share one label to bound cardinality
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.IncRequestsTotal(route, c.Request.Method, c.Writer.Status())
		rec.ObserveRequestDuration(route, c.Request.Method, time.Since(start))
	}
}
