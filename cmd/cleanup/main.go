// Command cleanup removes pending topics older than the configured
// retention window. These are leftovers of generation runs that failed
// after creating a topic but before populating it. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisstore "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis"
	topicrepo "github.com/heartmarshall/linguacourse-backend/internal/adapter/redis/topic"
	"github.com/heartmarshall/linguacourse-backend/internal/app"
	"github.com/heartmarshall/linguacourse-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rdb, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rdb.Close() //nolint:errcheck

	topics := topicrepo.New(rdb)

	threshold := time.Now().Add(-cfg.Generation.PendingRetention)

	deleted, err := topics.DeleteStalePending(ctx, threshold)
	if err != nil {
		logger.Error("stale pending cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("stale pending cleanup completed",
		slog.Int("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
