// Package social serves the read-only social lists: post comments and the
// follower graph.
package social

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

type commentRepo interface {
	ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error)
}

type followRepo interface {
	ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.UserSummary, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.UserSummary, error)
}

// Service provides comment and follow listings.
type Service struct {
	comments commentRepo
	follows  followRepo
	cfg      config.SocialConfig
	log      *slog.Logger
}

// NewService creates a new social service.
func NewService(log *slog.Logger, comments commentRepo, follows followRepo, cfg config.SocialConfig) *Service {
	return &Service{
		comments: comments,
		follows:  follows,
		cfg:      cfg,
		log:      log.With("service", "social"),
	}
}

// ListInput selects one page of a list owned by a post or a user.
type ListInput struct {
	ID       uuid.UUID
	Page     *int
	PageSize *int
}

// Comments returns one page of a post's comments, newest first.
func (s *Service) Comments(ctx context.Context, input ListInput) ([]domain.Comment, error) {
	page, err := s.resolve(input, "post_id")
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListComments(ctx, input.ID, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Followers returns one page of the users following input.ID, most recent
// follow first.
func (s *Service) Followers(ctx context.Context, input ListInput) ([]domain.UserSummary, error) {
	page, err := s.resolve(input, "user_id")
	if err != nil {
		return nil, err
	}

	users, err := s.follows.ListFollowers(ctx, input.ID, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return users, nil
}

// Following returns one page of the users input.ID follows, most recent
// follow first.
func (s *Service) Following(ctx context.Context, input ListInput) ([]domain.UserSummary, error) {
	page, err := s.resolve(input, "user_id")
	if err != nil {
		return nil, err
	}

	users, err := s.follows.ListFollowing(ctx, input.ID, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	return users, nil
}

func (s *Service) resolve(input ListInput, idField string) (domain.Page, error) {
	var errs []domain.FieldError
	if input.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: idField, Message: "required"})
	}

	page, pageErrs := domain.ResolvePage(input.Page, input.PageSize, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	errs = append(errs, pageErrs...)
	if len(errs) > 0 {
		return domain.Page{}, domain.NewValidationErrors(errs)
	}
	return page, nil
}
