package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

// New creates a new Redis client, waiting for the server to come up with a
// bounded fixed-backoff retry. The wait happens once at process start; request
// handling never retries.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for attempt := 0; attempt < pingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		lastErr = client.Ping(pingCtx).Err()
		cancel()
		if lastErr == nil {
			return client, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("platform/cache: ping: %w", ctx.Err())
		case <-time.After(pingBackoff):
		}
	}
	return nil, fmt.Errorf("platform/cache: ping after %d attempts: %w", pingAttempts, lastErr)
}
