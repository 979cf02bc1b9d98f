package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mixtape-labs/session-service/internal/domain"
)

func rateLimitedFixture(max int64) *fixture {
	f := newFixtureWithConfig(Config{
		RateLimit: RateLimitConfig{
			Enabled:     true,
			MaxRequests: max,
			Window:      time.Minute,
		},
	})
	f.service.nowFn = func() time.Time {
		return time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	}
	return f
}

func TestRateLimitRejectsAboveThreshold(t *testing.T) {
	t.Parallel()

	f := rateLimitedFixture(2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("attempt %d: expected ErrNotFound, got %v", i, err)
		}
	}

	_, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	var rle *domain.RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RateLimitError, got %T", err)
	}
	if rle.Actual != 3 || rle.Permitted != 2 {
		t.Fatalf("expected actual=3 permitted=2, got actual=%d permitted=%d", rle.Actual, rle.Permitted)
	}
}

func TestRateLimitCountsIdentitiesSeparately(t *testing.T) {
	t.Parallel()

	f := rateLimitedFixture(1)
	ctx := context.Background()

	if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// A different identity has its own counter.
	if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.2"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second ip, got %v", err)
	}
	if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited for first ip, got %v", err)
	}
}

func TestRateLimitWindowRollsOverByMinute(t *testing.T) {
	t.Parallel()

	f := rateLimitedFixture(1)
	ctx := context.Background()

	if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited in same window, got %v", err)
	}

	// Next wall-clock minute is a fresh bucket.
	f.service.nowFn = func() time.Time {
		return time.Date(2026, 8, 28, 10, 31, 0, 0, time.UTC)
	}
	if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected fresh window to admit request, got %v", err)
	}
}

func TestRateLimitDisabledOrAnonymousSkipsCounter(t *testing.T) {
	t.Parallel()

	disabled := newFixture()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := disabled.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); errors.Is(err, domain.ErrRateLimited) {
			t.Fatalf("limiter rejected with rate limiting disabled")
		}
	}

	enabled := rateLimitedFixture(1)
	for i := 0; i < 5; i++ {
		// No client identity means nothing to key the counter on.
		if _, err := enabled.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw"}); errors.Is(err, domain.ErrRateLimited) {
			t.Fatalf("limiter rejected a request without identity")
		}
	}
}

func TestRateLimitFailsOpenOnStoreError(t *testing.T) {
	t.Parallel()

	f := rateLimitedFixture(1)
	ctx := context.Background()

	f.limiter.mu.Lock()
	f.limiter.errAll = errors.New("connection refused")
	f.limiter.mu.Unlock()

	for i := 0; i < 3; i++ {
		if _, err := f.service.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", ClientIP: "10.0.0.1"}); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected fail-open ErrNotFound, got %v", err)
		}
	}
}
