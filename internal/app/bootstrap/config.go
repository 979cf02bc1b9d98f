// Package bootstrap resolves the service configuration consumed by the
// surrounding process wiring. The session core itself takes an
// application.Config; this package is where file and environment inputs
// are folded into it.
package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mixtape-labs/session-service/internal/application"
)

// Config is the resolved runtime configuration.
// It merges file defaults and environment overrides to support both local
// and deployed runs.
type Config struct {
	ServiceID string

	DatabaseURL string
	RedisURL    string
	MaxDBConns  int

	BcryptCost int

	SessionTTL       time.Duration
	TokenLength      int
	RateLimitEnabled bool
	RateLimitMax     int64
	RateLimitWindow  time.Duration
}

// SessionConfig projects the runtime config onto the session core's own
// configuration structure.
func (c Config) SessionConfig() application.Config {
	return application.Config{
		SessionTTL:  c.SessionTTL,
		TokenLength: c.TokenLength,
		RateLimit: application.RateLimitConfig{
			Enabled:     c.RateLimitEnabled,
			MaxRequests: c.RateLimitMax,
			Window:      c.RateLimitWindow,
		},
	}
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID string `yaml:"id"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Sessions struct {
		TTLSeconds  int `yaml:"ttl_seconds"`
		TokenLength int `yaml:"token_length"`
	} `yaml:"sessions"`
	RateLimit struct {
		// Pointer so an explicit `enabled: false` is distinguishable from unset.
		Enabled       *bool `yaml:"enabled"`
		MaxRequests   int64 `yaml:"max_requests"`
		WindowSeconds int   `yaml:"window_seconds"`
	} `yaml:"rate_limit"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:        "session-service",
		MaxDBConns:       20,
		BcryptCost:       12,
		SessionTTL:       application.DefaultSessionTTL,
		TokenLength:      application.DefaultTokenLength,
		RateLimitEnabled: true,
		RateLimitMax:     application.DefaultRateLimitMax,
		RateLimitWindow:  application.DefaultRateLimitWindow,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Sessions.TTLSeconds > 0 {
			cfg.SessionTTL = time.Duration(f.Sessions.TTLSeconds) * time.Second
		}
		if f.Sessions.TokenLength > 0 {
			cfg.TokenLength = f.Sessions.TokenLength
		}
		if f.RateLimit.Enabled != nil {
			cfg.RateLimitEnabled = *f.RateLimit.Enabled
		}
		if f.RateLimit.MaxRequests > 0 {
			cfg.RateLimitMax = f.RateLimit.MaxRequests
		}
		if f.RateLimit.WindowSeconds > 0 {
			cfg.RateLimitWindow = time.Duration(f.RateLimit.WindowSeconds) * time.Second
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.MaxDBConns = envInt("DB_MAX_CONNS", cfg.MaxDBConns)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.TokenLength = envInt("SESSION_TOKEN_LENGTH", cfg.TokenLength)
	cfg.SessionTTL = time.Duration(envInt("SESSION_TTL_SECONDS", int(cfg.SessionTTL.Seconds()))) * time.Second
	cfg.RateLimitEnabled = envBool("RATE_LIMIT_ENABLED", cfg.RateLimitEnabled)
	cfg.RateLimitMax = int64(envInt("RATE_LIMIT_MAX_REQUESTS", int(cfg.RateLimitMax)))
	cfg.RateLimitWindow = time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", int(cfg.RateLimitWindow.Seconds()))) * time.Second

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envBool parses common boolean env forms while keeping a deterministic fallback.
func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}
