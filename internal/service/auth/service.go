// Package auth provides business logic for signup, login, and session
// token verification.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
}

// sessionManager defines the session token interface needed by the auth service.
type sessionManager interface {
	Issue(userID uuid.UUID) (string, error)
	Validate(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, sessions sessionManager) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
	}
}

// ValidateToken checks a session token and returns the user ID it carries.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	return s.sessions.Validate(token)
}
