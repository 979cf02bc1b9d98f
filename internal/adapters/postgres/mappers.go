package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mixtape-labs/session-service/internal/domain"
)

func toDomainUser(rec userModel) domain.User {
	return domain.User{
		ID:           rec.UserID,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
