package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mixtape-labs/session-service/internal/ports"
)

const rateLimitKeyPrefix = "rate_limit:"

// RedisRateLimitStore keeps fixed-window request counters in Redis.
type RedisRateLimitStore struct {
	client *redis.Client
}

func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Increment bumps the window counter and re-arms its expiry in one
// MULTI/EXEC batch, so a crash between the two commands cannot leave an
// un-expiring counter behind.
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, rateLimitKeyPrefix+key)
		p.Expire(ctx, rateLimitKeyPrefix+key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

var _ ports.RateLimitStore = (*RedisRateLimitStore)(nil)
