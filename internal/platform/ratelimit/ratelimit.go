// Package ratelimit provides a Redis-backed fixed-window request limiter for
// the credential endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter counts requests per key in fixed windows backed by Redis.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewLimiter creates a Limiter allowing limit requests per window for each key.
func NewLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// key returns the Redis key for a rate-limit counter.
func (l *Limiter) key(id string) string {
	return fmt.Sprintf("%s:%s", l.prefix, id)
}

// Allow increments the counter for key and reports whether the request is
// within the window's limit. Redis errors fail open: the request is allowed
// and the error returned for logging.
func (l *Limiter) Allow(ctx context.Context, id string) (bool, error) {
	k := l.key(id)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, err
	}
	// First hit in the window starts its expiry clock.
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, err
		}
	}
	return n <= int64(l.limit), nil
}

// Middleware returns a Gin middleware limiting requests per client IP.
// A nil limiter disables limiting, matching the service's ability to run
// without Redis.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !ok {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		c.Next()
	}
}
