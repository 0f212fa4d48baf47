package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/auth"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// VerifyCredentials reports whether the password matches the stored hash
// for the given user. An absent user is false, not an error.
func (s *Service) VerifyCredentials(ctx context.Context, userID uuid.UUID, password string) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("auth.VerifyCredentials get user: %w", err)
	}

	return auth.CheckPassword(user.PasswordHash, password), nil
}
