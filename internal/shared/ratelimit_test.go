package shared

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRateLimiter(client, limit, window), mr
}

func TestRateLimiterBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "login", "10.0.0.1")
		if err != nil {
			t.Fatalf("allow %d: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("attempt %d should be admitted", i+1)
		}
	}

	allowed, err := limiter.Allow(ctx, "login", "10.0.0.1")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if allowed {
		t.Fatalf("6th attempt within the window must be rejected")
	}
}

func TestRateLimiterKeysIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "login", "10.0.0.1"); !allowed {
		t.Fatalf("first attempt must pass")
	}
	if allowed, _ := limiter.Allow(ctx, "login", "10.0.0.1"); allowed {
		t.Fatalf("second attempt for the same key must be rejected")
	}

	// Different client, same action.
	if allowed, _ := limiter.Allow(ctx, "login", "10.0.0.2"); !allowed {
		t.Fatalf("another client must have its own budget")
	}
	// Same client, different action.
	if allowed, _ := limiter.Allow(ctx, "register", "10.0.0.1"); !allowed {
		t.Fatalf("another action must have its own budget")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter, mr := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "login", "10.0.0.1")
	_, _ = limiter.Allow(ctx, "login", "10.0.0.1")
	if allowed, _ := limiter.Allow(ctx, "login", "10.0.0.1"); allowed {
		t.Fatalf("budget exhausted, attempt must be rejected")
	}

	mr.FastForward(61 * time.Second)
	if allowed, _ := limiter.Allow(ctx, "login", "10.0.0.1"); !allowed {
		t.Fatalf("budget must reset after the window elapses")
	}
}

func TestRateLimiterConcurrentSameKey(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, err := limiter.Allow(ctx, "login", "10.0.0.1")
			if err != nil {
				t.Errorf("allow: %v", err)
				return
			}
			if allowed {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if admitted.Load() != 5 {
		t.Fatalf("exactly the budget must be admitted under concurrency, got %d", admitted.Load())
	}
}
