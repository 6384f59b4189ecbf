package middleware

import (
	"net/http"
	"sync"
	"time"

	"sneakdrop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL      = 15 * time.Minute
	limiterCleanupEvery = 2 * time.Minute
)

// RateLimiter is a per-client-IP token bucket with periodic cleanup of
// idle entries.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
	}
	go rl.janitor()
	return rl
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if ent, ok := rl.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-limiterIdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for k, ent := range rl.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(rl.entries, k)
		}
	}
}

func (rl *RateLimiter) janitor() {
	t := time.NewTicker(limiterCleanupEvery)
	defer t.Stop()
	for range t.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.get(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Trop de requêtes, réessaie dans un instant",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
