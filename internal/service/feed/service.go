// Package feed serves the social post feeds: public, following and curated.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/pkg/ctxutil"
)

type postRepo interface {
	Feed(ctx context.Context, f domain.FeedFilter) ([]domain.Post, error)
}

// Service provides feed queries.
type Service struct {
	posts postRepo
	cfg   config.FeedConfig
	log   *slog.Logger
}

// NewService creates a new feed service.
func NewService(log *slog.Logger, posts postRepo, cfg config.FeedConfig) *Service {
	return &Service{
		posts: posts,
		cfg:   cfg,
		log:   log.With("service", "feed"),
	}
}

// PageInput is an optional 1-based page request.
type PageInput struct {
	Page     *int
	PageSize *int
}

// CuratedInput narrows the curated feed.
type CuratedInput struct {
	PageInput
	MaxBudget *float64
	Category  *string
}

// Validate checks all fields and collects all errors.
func (i CuratedInput) Validate() error {
	if i.MaxBudget != nil && (math.IsNaN(*i.MaxBudget) || *i.MaxBudget < 0) {
		return domain.NewValidationError("budget", "must be a non-negative number")
	}
	return nil
}

// Public returns the newest active posts of everyone.
func (s *Service) Public(ctx context.Context, input PageInput) ([]domain.Post, error) {
	f, err := s.pageFilter(input)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, f)
}

// Following returns the newest active posts of the users the caller follows.
func (s *Service) Following(ctx context.Context, input PageInput) ([]domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f, err := s.pageFilter(input)
	if err != nil {
		return nil, err
	}
	f.FollowerID = &userID
	return s.list(ctx, f)
}

// Curated returns active posts within the caller's budget and category.
func (s *Service) Curated(ctx context.Context, input CuratedInput) ([]domain.Post, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	f, err := s.pageFilter(input.PageInput)
	if err != nil {
		return nil, err
	}
	f.MaxBudget = input.MaxBudget
	if input.Category != nil {
		if c := strings.TrimSpace(*input.Category); c != "" {
			f.Category = &c
		}
	}
	return s.list(ctx, f)
}

func (s *Service) pageFilter(input PageInput) (domain.FeedFilter, error) {
	page, errs := domain.ResolvePage(input.Page, input.PageSize, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	if len(errs) > 0 {
		return domain.FeedFilter{}, domain.NewValidationErrors(errs)
	}
	return domain.FeedFilter{Limit: page.Size, Offset: page.Offset()}, nil
}

func (s *Service) list(ctx context.Context, f domain.FeedFilter) ([]domain.Post, error) {
	posts, err := s.posts.Feed(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
