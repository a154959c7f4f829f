// Package cache opens the Redis client backing the shared rate-limit counters.
// Content itself is never cached.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"polyglot/internal/middleware"
	"polyglot/internal/observability"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// errorCounter feeds failed commands into RedisErrorRate. redis.Nil is a miss, not a failure.
type errorCounter struct{}

func (errorCounter) DialHook(next redis.DialHook) redis.DialHook { return next }

func (errorCounter) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		countFailure(err, cmd.Name())
		return err
	}
}

func (errorCounter) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		countFailure(err, "pipeline")
		return err
	}
}

func countFailure(err error, operation string) {
	if err != nil && !errors.Is(err, redis.Nil) {
		observability.RedisErrorRate.WithLabelValues(operation).Inc()
	}
}

// ParseOptions accepts either a redis:// (or rediss://) URL or a bare host:port address.
func ParseOptions(addr string) (*redis.Options, error) {
	if !strings.Contains(addr, "://") {
		return &redis.Options{Addr: addr}, nil
	}
	opts, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return opts, nil
}

// Connect opens and pings a client for addr. An empty addr disables Redis;
// an invalid or unreachable one is logged. Both yield nil, and the rate
// limiter then counts per process.
func Connect(addr string) *redis.Client {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil
	}

	opts, err := ParseOptions(addr)
	if err != nil {
		middleware.Logger.Warn("Redis disabled, rate limits are per instance", slog.String("error", err.Error()))
		return nil
	}

	client := redis.NewClient(opts)
	client.AddHook(errorCounter{})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, rate limits are per instance",
			slog.String("addr", opts.Addr),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil
	}

	middleware.Logger.Info("Redis connected", slog.String("addr", opts.Addr))
	return client
}
