package auth

import "github.com/heartmarshall/linguacourse-backend/internal/domain"

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}
