package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the authoritative account record held in the durable store.
// A JSON snapshot of it is what the session cache stores per token, so the
// struct doubles as the session payload schema.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
