package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	anthropicprovider "github.com/heartmarshall/linguacourse-backend/internal/adapter/provider/anthropic"
	redisstore "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis"
	courserepo "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis/course"
	topicrepo "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis/topic"
	userrepo "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis/user"
	"github.com/heartmarshall/linguacourse-backend/internal/auth"
	"github.com/heartmarshall/linguacourse-backend/internal/config"
	"github.com/heartmarshall/linguacourse-backend/internal/generator"
	authsvc "github.com/heartmarshall/linguacourse-backend/internal/service/auth"
	contentsvc "github.com/heartmarshall/linguacourse-backend/internal/service/content"
	usersvc "github.com/heartmarshall/linguacourse-backend/internal/service/user"
	"github.com/heartmarshall/linguacourse-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the store, wires services and handlers, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	rdb, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close() //nolint:errcheck

	users := userrepo.New(rdb)
	courses := courserepo.New(rdb)
	topics := topicrepo.New(rdb)

	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	model := anthropicprovider.New(cfg.LLM)

	authService := authsvc.NewService(logger, users, sessions)
	userService := usersvc.NewService(logger, users)
	contentService := contentsvc.NewService(logger, courses, topics)
	generatorService := generator.NewService(logger, cfg.LLM, cfg.Generation, courses, topics, model)

	router := rest.NewRouter(logger, authService, cfg.CORS, rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		User:   rest.NewUserHandler(userService, logger),
		Course: rest.NewCourseHandler(contentService, generatorService, logger),
		Topic:  rest.NewTopicHandler(contentService, generatorService, logger),
		Health: rest.NewHealthHandler(redisstore.NewPinger(rdb), BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
