package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/config"
	"github.com/heartmarshall/linguacourse-backend/internal/transport/middleware"
)

// tokenValidator resolves bearer tokens for the auth middleware.
type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Course *CourseHandler
	Topic  *TopicHandler
	Health *HealthHandler
}

// NewRouter builds the HTTP routing table. Every request passes through
// request-id, logging, recovery, CORS, and token resolution; routes that
// touch user-owned data additionally require an authenticated user.
func NewRouter(logger *slog.Logger, validator tokenValidator, corsCfg config.CORSConfig, h Handlers) http.Handler {
	mux := http.NewServeMux()

	protected := func(handler http.HandlerFunc) http.Handler {
		return middleware.RequireUser(handler)
	}

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.Handle("GET /me", protected(h.User.Get))
	mux.Handle("PATCH /me", protected(h.User.Update))

	mux.Handle("POST /courses", protected(h.Course.Create))
	mux.Handle("GET /courses", protected(h.Course.List))
	mux.Handle("GET /courses/{id}", protected(h.Course.Get))
	mux.Handle("GET /courses/{id}/topics/{category}", protected(h.Course.Topics))
	mux.Handle("POST /courses/{id}/generate/{category}", protected(h.Course.Generate))

	mux.Handle("GET /topics/{id}", protected(h.Topic.Get))
	mux.Handle("POST /topics/{id}/message", protected(h.Topic.Message))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
		middleware.Auth(validator),
	)

	return chain(mux)
}
