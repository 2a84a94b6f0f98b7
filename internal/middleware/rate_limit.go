package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tradex-backend/internal/pkg/response"
)

const rateLimitPrefix = "ratelimit:"

// RateLimit returns a process-wide request limiter backed by Redis, fixed
// window keyed by client IP. When rdb is nil or Redis fails the request is
// allowed through; the limiter degrades open.
func RateLimit(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}
		ctx := context.Background()
		key := rateLimitPrefix + c.IP()

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			return c.Next()
		}
		if n == 1 {
			rdb.Expire(ctx, key, window)
		}
		if n > int64(max) {
			return response.Error(c, "Too many requests, please try again later", fiber.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
