package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	experiencerepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/experience"
	followrepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/follow"
	postrepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/post"
	reviewrepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/review"
	"github.com/wayfarer-app/wayfarer-backend/internal/auth"
	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/experience"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/feed"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/social"
	"github.com/wayfarer-app/wayfarer-backend/internal/transport/middleware"
	"github.com/wayfarer-app/wayfarer-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	experiences := experiencerepo.New(pool)
	reviews := reviewrepo.New(pool)
	posts := postrepo.New(pool)
	follows := followrepo.New(pool)

	experienceService := experience.NewService(logger, experiences, reviews, txm, cfg.Search)
	feedService := feed.NewService(logger, posts, cfg.Feed)
	socialService := social.NewService(logger, posts, follows, cfg.Social)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(logger, RouterDeps{
		Health:          rest.NewHealthHandler(pool, Version),
		Experiences:     rest.NewExperienceHandler(experienceService, logger),
		Feed:            rest.NewFeedHandler(feedService, logger),
		Social:          rest.NewSocialHandler(socialService, logger),
		Tokens:          auth.NewJWTManagerFromConfig(cfg.Auth),
		Limiter:         limiter,
		CORS:            cfg.CORS,
		SearchPerMinute: cfg.RateLimit.SearchPerMinute,
		RequestTimeout:  cfg.Database.QueryTimeout,
	})

	return serve(ctx, logger, cfg.Server, handler)
}

func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
