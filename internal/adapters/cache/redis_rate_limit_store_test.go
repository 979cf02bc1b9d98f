package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimitStore(t *testing.T) (*RedisRateLimitStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return NewRedisRateLimitStore(client), mr
}

func TestRateLimitStoreIncrementCounts(t *testing.T) {
	t.Parallel()

	store, _ := newTestLimitStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx, "10.0.0.1:30", time.Minute)
		if err != nil {
			t.Fatalf("increment failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected counter %d, got %d", want, got)
		}
	}
}

func TestRateLimitStoreArmsExpiry(t *testing.T) {
	t.Parallel()

	store, mr := newTestLimitStore(t)
	ctx := context.Background()

	if _, err := store.Increment(ctx, "10.0.0.1:30", time.Minute); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if ttl := mr.TTL("rate_limit:10.0.0.1:30"); ttl != time.Minute {
		t.Fatalf("expected 60s ttl, got %v", ttl)
	}
}

func TestRateLimitStoreCounterResetsAfterWindow(t *testing.T) {
	t.Parallel()

	store, mr := newTestLimitStore(t)
	ctx := context.Background()

	if _, err := store.Increment(ctx, "10.0.0.1:30", time.Minute); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	mr.FastForward(61 * time.Second)

	got, err := store.Increment(ctx, "10.0.0.1:30", time.Minute)
	if err != nil {
		t.Fatalf("increment after expiry failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected fresh counter after window, got %d", got)
	}
}
