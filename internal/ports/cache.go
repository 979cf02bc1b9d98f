package ports

import (
	"context"
	"time"

	"github.com/mixtape-labs/session-service/internal/domain"
)

// SessionStore holds serialized user snapshots keyed by session token.
// Entries expire on their own; the service never refreshes a TTL.
type SessionStore interface {
	// Put writes the snapshot and arms its expiry in a single atomic batch,
	// so no reader can observe a session without a TTL.
	Put(ctx context.Context, token string, user domain.User, ttl time.Duration) error
	// Get returns (nil, nil) on a miss. Absence is not an error at this
	// layer; the caller translates it to domain.ErrInvalidSessionToken.
	Get(ctx context.Context, token string) (*domain.User, error)
	// Delete removes the entry, succeeding even when it is already gone.
	Delete(ctx context.Context, token string) error
}

// RateLimitStore maintains per-window request counters.
type RateLimitStore interface {
	// Increment bumps the counter and (re)arms its expiry in one atomic
	// round trip, returning the post-increment value.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
