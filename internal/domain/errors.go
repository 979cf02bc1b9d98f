package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrUsernameTaken signals a uniqueness violation on account creation.
	// The durable store's unique index is the authority, not a prior lookup.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials hides which part of the credential pair failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSessionToken covers both a cache miss and a malformed cache payload.
	ErrInvalidSessionToken = errors.New("invalid session token")
	// ErrStoreUnavailable wraps communication or protocol failures from either backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrRateLimited      = errors.New("too many requests")
	ErrInvalidInput     = errors.New("invalid input")
)

// RateLimitError reports a rejected request together with the observed and
// permitted counts for the current window, so callers can surface both.
type RateLimitError struct {
	Actual    int64
	Permitted int64
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many requests: %d of %d permitted", e.Actual, e.Permitted)
}

// Unwrap lets errors.Is(err, ErrRateLimited) match without losing the counts.
func (e *RateLimitError) Unwrap() error { return ErrRateLimited }
