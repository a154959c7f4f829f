package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"polyglot/internal/models"
	"polyglot/internal/observability"
	"polyglot/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503 Service Unavailable) if Redis is unavailable.
	FailClosed
)

// CheckRateLimit checks if a resource has exceeded its rate limit.
// Returns true if allowed, false if limit exceeded.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// INCR and set EXPIRE if new
	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return cnt <= int64(limit), nil
}

// RateLimit returns a Fiber middleware enforcing `limit` requests per `window` per client IP.
// Counters live in Redis when rdb is set and in process memory otherwise. A limit of zero disables limiting.
// It defaults to FailOpen policy.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name ...string) fiber.Handler {
	return RateLimitWithPolicy(rdb, limit, window, FailOpen, name...)
}

// RateLimitWithPolicy returns a Fiber middleware enforcing `limit` requests per `window` with a specific failure policy.
func RateLimitWithPolicy(rdb *redis.Client, limit int, window time.Duration, policy FailPolicy, name ...string) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	if rdb == nil {
		return limiter.New(limiter.Config{
			Max:          limit,
			Expiration:   window,
			Next:         isPreflight,
			KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
			LimitReached: func(c *fiber.Ctx) error {
				return rejectRateLimited(c, window)
			},
		})
	}

	resource := "api"
	if len(name) > 0 {
		resource = name[0]
	}

	return func(c *fiber.Ctx) error {
		if isPreflight(c) {
			return c.Next()
		}

		allowed, err := CheckRateLimit(c.UserContext(), rdb, resource, "ip:"+c.IP(), limit, window)
		if err != nil {
			Logger.WarnContext(c.UserContext(), "rate limit store unavailable",
				slog.String("resource", resource),
				slog.String("error", err.Error()),
			)
			if policy == FailClosed {
				return c.Status(fiber.StatusServiceUnavailable).JSON(
					response.Failure(models.CodeInternal, "Rate limit store unavailable", nil, RequestID(c)))
			}
			return c.Next()
		}

		if !allowed {
			return rejectRateLimited(c, window)
		}
		return c.Next()
	}
}

func isPreflight(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodOptions
}

func rejectRateLimited(c *fiber.Ctx, window time.Duration) error {
	observability.RateLimitRejections.Inc()
	appErr := models.NewRateLimitedError()
	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
	return c.Status(fiber.StatusTooManyRequests).JSON(
		response.Failure(appErr.Code, appErr.Message, nil, RequestID(c)))
}
