// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/expense-buddy/backend/internal/domain/error"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/dto"
)

// RateLimiter throttles login attempts per client IP using a fixed
// Redis window. A nil client disables limiting, so environments without
// Redis keep working.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a new rate limiter instance.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Limit returns a Gin middleware handler that enforces the attempt limit.
// Redis outages fail open: availability over throttling.
func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		ctx := c.Request.Context()

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
				slog.Warn("failed to set rate limit window", "error", err)
			}
		}

		if count > int64(l.limit) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts, try again later",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
