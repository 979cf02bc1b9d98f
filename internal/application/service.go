// Package application holds the session-service orchestration core: it
// authenticates accounts against the durable user store, mints opaque
// session tokens, and keeps session snapshots in the ephemeral cache.
//
// The service owns no mutable state beyond immutable handles to its
// collaborators, so a single instance is safe for concurrent use from many
// request handlers. It performs no retries and no local recovery; every
// collaborator failure is returned to the caller in one of the domain
// error kinds.
package application

import (
	"time"

	"github.com/mixtape-labs/session-service/internal/ports"
)

// Defaults for Config fields left zero. SessionTTL and TokenLength mirror
// the values the deployed cache was provisioned with.
const (
	DefaultSessionTTL      = 120 * time.Second
	DefaultTokenLength     = 30
	DefaultRateLimitMax    = 60
	DefaultRateLimitWindow = time.Minute
)

// RateLimitConfig tunes the per-identity fixed-window limiter.
// Disabled by zero value; bursts across a window boundary can admit up to
// twice MaxRequests in a short span, which is accepted for this service.
type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int64
	Window      time.Duration
}

// Config carries the tunables of the session core. Tests shorten the TTL;
// production uses the defaults.
type Config struct {
	SessionTTL  time.Duration
	TokenLength int
	RateLimit   RateLimitConfig
}

func (c Config) withDefaults() Config {
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.TokenLength <= 0 {
		c.TokenLength = DefaultTokenLength
	}
	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = DefaultRateLimitMax
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = DefaultRateLimitWindow
	}
	return c
}

type Service struct {
	cfg      Config
	users    ports.UserRepository
	sessions ports.SessionStore
	limiter  ports.RateLimitStore
	hasher   ports.PasswordHasher
	tokens   ports.TokenGenerator
	nowFn    func() time.Time
}

type Dependencies struct {
	Config   Config
	Users    ports.UserRepository
	Sessions ports.SessionStore
	Limiter  ports.RateLimitStore
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenGenerator
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:      deps.Config.withDefaults(),
		users:    deps.Users,
		sessions: deps.Sessions,
		limiter:  deps.Limiter,
		hasher:   deps.Hasher,
		tokens:   deps.Tokens,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}
