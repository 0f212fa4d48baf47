package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/linguacourse-backend/internal/auth"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// Login authenticates a user by name and password.
// Returns domain.ErrUnauthorized for an unknown name or a wrong password;
// the caller cannot tell which, so login failures do not enumerate users.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
