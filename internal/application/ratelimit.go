package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mixtape-labs/session-service/internal/domain"
)

// enforceRateLimit applies the per-identity fixed-window limiter. The
// window bucket is the current UTC minute, so the counter key rolls over
// on wall-clock boundaries and each bucket expires with the window TTL.
//
// A limiter-store outage fails open: losing abuse protection briefly is
// preferable to refusing every login while Redis restarts.
func (s *Service) enforceRateLimit(ctx context.Context, identity string) error {
	if !s.cfg.RateLimit.Enabled || s.limiter == nil || identity == "" {
		return nil
	}

	bucket := fmt.Sprintf("%s:%d", identity, s.nowFn().UTC().Minute())
	count, err := s.limiter.Increment(ctx, bucket, s.cfg.RateLimit.Window)
	if err != nil {
		slog.Default().WarnContext(ctx, "rate-limit counter unavailable",
			"module", "application",
			"layer", "application",
			"operation", "rate_limit",
			"outcome", "warning",
			"error", err,
		)
		return nil
	}

	if count > s.cfg.RateLimit.MaxRequests {
		return &domain.RateLimitError{
			Actual:    count,
			Permitted: s.cfg.RateLimit.MaxRequests,
		}
	}
	return nil
}
