package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "arcade:ratelimit"
	redisTimeout = 500 * time.Millisecond
)

// fixedWindowScript increments the window counter and arms its expiry on first use.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisStore is a fixed-window rate limiter store shared by every API replica.
// It implements echo's middleware.RateLimiterStore.
type RedisStore struct {
	client redis.Scripter
	limit  int64
	window time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewRedisStore creates a store allowing limit requests per window for each identifier.
func NewRedisStore(client redis.Scripter, limit int, window time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		limit:  int64(limit),
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Allow counts the request against the identifier's current window.
// Redis failures let the request through.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, s.client,
		[]string{s.windowKey(identifier)},
		s.window.Milliseconds(),
	).Int64()
	if err != nil {
		s.logger.Warn("Rate limiter store unavailable, allowing request",
			slog.String("identifier", identifier),
			slog.Any("error", err),
		)

		return true, nil
	}

	return count <= s.limit, nil
}

func (s *RedisStore) windowKey(identifier string) string {
	window := s.now().UnixNano() / s.window.Nanoseconds()

	return fmt.Sprintf("%s:%s:%d", keyPrefix, identifier, window)
}
