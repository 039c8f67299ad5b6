package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habitpulse/backend/internal/apierror"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
)

// bucket is one client's fixed window
type bucket struct {
	opened time.Time
	last   time.Time
	hits   int
}

// RateLimiter admits at most rate requests per key in each fixed window.
// Buckets idle for two windows are swept in the background until Stop.
type RateLimiter struct {
	name   string
	rate   int
	window time.Duration

	mu       sync.Mutex
	requests map[string]*bucket

	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(rate int, window time.Duration, name string) *RateLimiter {
	rl := &RateLimiter{
		name:     name,
		rate:     rate,
		window:   window,
		requests: map[string]*bucket{},
		done:     make(chan struct{}),
	}
	go rl.sweepLoop(2 * window)

	logger.Default().Debug("rate limiter started",
		logger.String("limiter", name),
		logger.Int("rate", rate),
		logger.Duration("window", window),
	)
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-rl.done:
			return
		case now := <-t.C:
			if removed, left := rl.sweep(now, every); removed > 0 {
				logger.Default().Debug("rate limiter swept idle clients",
					logger.String("limiter", rl.name),
					logger.Int("removed", removed),
					logger.Int("tracked", left),
				)
			}
		}
	}
}

// sweep drops buckets not touched within idle of now
func (rl *RateLimiter) sweep(now time.Time, idle time.Duration) (removed, left int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.requests {
		if now.Sub(b.last) > idle {
			delete(rl.requests, key)
			removed++
		}
	}
	return removed, len(rl.requests)
}

// isAllowed records a hit for key. It returns whether the hit fits the
// window, the hit count so far, and how long until the window rolls over.
func (rl *RateLimiter) isAllowed(key string) (bool, int, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b := rl.requests[key]
	if b == nil || now.Sub(b.opened) >= rl.window {
		b = &bucket{opened: now}
		rl.requests[key] = b
	}
	b.hits++
	b.last = now

	return b.hits <= rl.rate, b.hits, rl.window - now.Sub(b.opened)
}

// RateLimit allows perMinute requests per minute for each user, falling back
// to the client IP before authentication has run.
func RateLimit(perMinute int) gin.HandlerFunc {
	return rateLimitMiddleware(NewRateLimiter(perMinute, time.Minute, "api"))
}

func rateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.rate)

	return func(c *gin.Context) {
		key := GetUserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		ok, hits, reset := limiter.isAllowed(key)
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(limiter.rate-hits, 0)))
		if ok {
			c.Next()
			return
		}

		logger.FromContext(c.Request.Context()).Warn("request throttled",
			logger.String("limiter", limiter.name),
			logger.String("client", key),
			logger.Int("hits", hits),
			logger.Int("limit", limiter.rate),
		)
		retry := max(int(math.Ceil(reset.Seconds())), 1)
		apierror.WriteProblem(c, apierror.NewRateLimitError(apierror.GetRequestID(c), retry))
	}
}
