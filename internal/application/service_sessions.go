package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mixtape-labs/session-service/internal/domain"
	"github.com/mixtape-labs/session-service/internal/ports"
)

// Login authenticates a username/password pair against the durable store
// and mints a cached session for it. A missing account surfaces as
// domain.ErrNotFound; a wrong password as domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (SessionDescriptor, error) {
	username, err := domain.NormalizeUsername(req.Username)
	if err != nil {
		return SessionDescriptor{}, err
	}
	if err := s.enforceRateLimit(ctx, req.ClientIP); err != nil {
		return SessionDescriptor{}, err
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return SessionDescriptor{}, err
		}
		return SessionDescriptor{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return SessionDescriptor{}, domain.ErrInvalidCredentials
	}

	return s.mintSession(ctx, user)
}

// CreateAccount registers a new user and immediately opens a session for
// it, so the caller does not need a follow-up login round trip. A duplicate
// username surfaces as domain.ErrUsernameTaken straight from the store's
// unique index.
func (s *Service) CreateAccount(ctx context.Context, req CreateAccountRequest) (SessionDescriptor, error) {
	username, err := domain.NormalizeUsername(req.Username)
	if err != nil {
		return SessionDescriptor{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return SessionDescriptor{}, err
	}
	if err := s.enforceRateLimit(ctx, req.ClientIP); err != nil {
		return SessionDescriptor{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return SessionDescriptor{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    s.nowFn(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrNotFound) {
			return SessionDescriptor{}, err
		}
		return SessionDescriptor{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return s.mintSession(ctx, user)
}

// ResolveSession maps a bearer token back to the user snapshot captured at
// login time. The durable store is not consulted; the cache alone decides
// whether the session is live.
func (s *Service) ResolveSession(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrInvalidSessionToken
	}
	user, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSessionToken) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if user == nil {
		return domain.User{}, domain.ErrInvalidSessionToken
	}
	return *user, nil
}

// Logout drops the cached session. Deleting an already-expired or unknown
// token succeeds; the end state is the same either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidSessionToken
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteAccount removes the durable record behind a live session, then the
// session itself. The durable delete goes first: a crash between the two
// steps leaves at worst a stale cache entry that expires with its TTL,
// never a deleted session pointing at a surviving account.
func (s *Service) DeleteAccount(ctx context.Context, token string) error {
	user, err := s.ResolveSession(ctx, token)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		// The account is gone; the orphaned session self-expires. Surface
		// the cache failure anyway so the caller knows the teardown was
		// partial.
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// UpdatePassword rotates the credential behind a live session. The cached
// snapshot keeps the old hash until it expires; resolution does not read
// the durable store, so no session is invalidated by the rotation.
func (s *Service) UpdatePassword(ctx context.Context, token, newPassword string) error {
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}
	user, err := s.ResolveSession(ctx, token)
	if err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = s.nowFn()
	if _, err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUsernameTaken) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// mintSession generates a token and writes the user snapshot under it with
// the configured TTL. The cache write is atomic with its expiry, so an
// un-expiring session can never be observed.
func (s *Service) mintSession(ctx context.Context, user domain.User) (SessionDescriptor, error) {
	token, err := s.tokens.Generate()
	if err != nil {
		return SessionDescriptor{}, fmt.Errorf("mint session token: %w", err)
	}
	if err := s.sessions.Put(ctx, token, user, s.cfg.SessionTTL); err != nil {
		return SessionDescriptor{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	slog.Default().DebugContext(ctx, "session minted",
		"module", "application",
		"layer", "application",
		"operation", "mint_session",
		"outcome", "success",
		"ttl_sec", int64(s.cfg.SessionTTL.Seconds()),
	)
	return SessionDescriptor{
		SessionToken:  token,
		TimeToLiveSec: int64(s.cfg.SessionTTL.Seconds()),
	}, nil
}
