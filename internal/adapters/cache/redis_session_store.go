package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mixtape-labs/session-service/internal/domain"
	"github.com/mixtape-labs/session-service/internal/ports"
)

// sessionKeyPrefix matches the keying used by the deployed cache, so a
// rolling upgrade sees existing sessions.
const sessionKeyPrefix = "username:"

// sessionEntry is the wire form of the cached snapshot. It exists because
// the password hash travels with the session (the durable record is not
// consulted on resolve) but is excluded from domain.User's JSON shape.
type sessionEntry struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RedisSessionStore keeps JSON user snapshots keyed by session token.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s *RedisSessionStore) Put(ctx context.Context, token string, user domain.User, ttl time.Duration) error {
	raw, err := json.Marshal(sessionEntry{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	if err != nil {
		return err
	}
	key := sessionKey(token)
	// SET and EXPIRE run as one MULTI/EXEC batch so no reader can observe
	// the key without its expiry armed.
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, raw, 0)
		p.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var entry sessionEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("%w: corrupt session payload", domain.ErrInvalidSessionToken)
	}
	return &domain.User{
		ID:           entry.ID,
		Username:     entry.Username,
		PasswordHash: entry.PasswordHash,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

var _ ports.SessionStore = (*RedisSessionStore)(nil)
