package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mixtape-labs/session-service/internal/domain"
)

// CreateUserParams captures the inputs of an account insert.
// The password arrives pre-hashed; adapters never see plaintext credentials.
type CreateUserParams struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for user accounts.
// Username uniqueness is enforced by the store itself (unique index), so a
// concurrent duplicate insert surfaces as domain.ErrUsernameTaken rather
// than racing a separate existence check.
type UserRepository interface {
	// Create inserts a new account and returns the freshly-read stored copy,
	// including the store-assigned identity.
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	// Update replaces the mutable fields of the record with the given identity.
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
