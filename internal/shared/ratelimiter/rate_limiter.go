// Package ratelimiter provides a fixed-window request rate limiter.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps how many times a key (typically a client IP) may perform
// an operation inside a fixed window. It backs the auth endpoints, where
// unbounded retries would amplify brute-force attempts.
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit calls per key per
// interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether the caller identified by key may proceed, and counts
// the attempt. The window resets once interval has elapsed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// Middleware returns a Gin middleware that rejects requests over the limit
// with 429, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
