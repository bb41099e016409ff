package shared

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "ratelimit:"

// RateLimiter is a fixed-window counter keyed by (action, client). Counters
// live in Redis so the check is a single atomic INCR; concurrent requests for
// the same key never over-admit.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter constructs a limiter admitting limit attempts per window for
// each (action, client) pair.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow records an attempt and reports whether it is within the window budget.
// The window starts at the first attempt for the key and is enforced by the
// key's TTL.
func (l *RateLimiter) Allow(ctx context.Context, action, client string) (bool, error) {
	key := rateKeyPrefix + action + ":" + client
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limiter: incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limiter: expire: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}
