package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// The password is stored only as a bcrypt hash; users are never deleted.
type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
