package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/linguacourse-backend/internal/auth"
	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// Signup registers a new user and returns a session token for them.
// Returns domain.ErrAlreadyExists when the name is taken; the repository's
// atomic name reservation decides the winner of a concurrent race.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Signup create user: %w", err)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
