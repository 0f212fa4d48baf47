// Package user provides business logic for profile management.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/auth"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name *string, passwordHash *string) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// GetProfile returns the user's profile.
// Returns domain.ErrNotFound when the user is absent.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile changes the user's name, password, or both. A nil field is
// left untouched. The password is rehashed before storage; a rename goes
// through the repository's name reservation, so a taken name surfaces as
// domain.ErrAlreadyExists.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var passwordHash *string
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile hash password: %w", err)
		}
		passwordHash = &hash
	}

	updated, err := s.users.Update(ctx, userID, input.Name, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("renamed", input.Name != nil),
		slog.Bool("password_changed", input.Password != nil))

	return updated, nil
}
