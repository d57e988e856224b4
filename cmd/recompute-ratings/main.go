// Command recompute-ratings re-derives every experience's aggregate rating
// from its reviews. It repairs ratings after manual data fixes and is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	"github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/experience"
	"github.com/wayfarer-app/wayfarer-backend/internal/app"
	"github.com/wayfarer-app/wayfarer-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	start := time.Now()
	updated, err := experience.New(pool).RecomputeAllRatings(ctx)
	if err != nil {
		logger.Error("recompute ratings failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("recompute ratings completed",
		slog.Int64("updated", updated),
		slog.Duration("duration", time.Since(start)),
	)
}
