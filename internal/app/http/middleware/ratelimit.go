package middleware

import (
	"net/http"
	"strconv"
	"time"

	"notes-saas/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	defaultRateLimitRequests = 100
	defaultRateLimitWindow   = 15 * time.Minute
)

// RateLimit provides fixed-window per-client-IP rate limiting via Redis.
type RateLimit struct {
	cache  cache.Cache
	limit  int
	window time.Duration
}

func NewRateLimit(c cache.Cache, limit int, window time.Duration) *RateLimit {
	if limit <= 0 {
		limit = defaultRateLimitRequests
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return &RateLimit{cache: c, limit: limit, window: window}
}

func (rl *RateLimit) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := cache.RateLimitKey(c.ClientIP())
		count, err := rl.cache.IncrWithExpiry(c.Request.Context(), key, rl.window)
		if err != nil {
			// On Redis error, allow the request (fail open)
			c.Next()
			return
		}

		remaining := rl.limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(rl.window).Unix(), 10))

		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, please try again later"})
			return
		}

		c.Next()
	}
}
