package security

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type RateLimiterConfig struct {
	Redis    *redis.Client
	Limit    int
	Interval time.Duration
}

// RateLimiter is a fixed-window per-client limiter backed by Redis, shared
// across server instances.
type RateLimiter struct {
	redis    *redis.Client
	limit    int
	interval time.Duration
}

func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		redis:    cfg.Redis,
		limit:    cfg.Limit,
		interval: cfg.Interval,
	}
}

// Allow counts one request for the client and reports whether it is within
// the window limit.
func (r *RateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s", clientKey)

	count, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.redis.Expire(ctx, key, r.interval).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(r.limit), nil
}

// GinMiddleware fails open: if Redis is unreachable the request proceeds.
func (r *RateLimiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := r.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
