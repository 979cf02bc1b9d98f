package domain

import (
	"fmt"
	"strings"
)

const (
	maxUsernameLength = 64
	maxPasswordLength = 128
)

// NormalizeUsername trims surrounding whitespace and validates bounds.
// Usernames are matched exactly in the durable store, so canonicalization
// has to happen once, here, before any lookup or insert.
func NormalizeUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "", fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(trimmed) > maxUsernameLength {
		return "", fmt.Errorf("%w: username must be <= %d characters", ErrInvalidInput, maxUsernameLength)
	}
	return trimmed, nil
}

// ValidatePassword enforces only presence and an upper bound.
// The service predates any strength policy and existing accounts carry
// short passwords, so stricter rules cannot be applied retroactively here.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be <= %d characters", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}
