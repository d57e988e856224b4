package experience

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/pkg/ctxutil"
)

// ListReviews returns one page of an experience's reviews, newest first.
func (s *Service) ListReviews(ctx context.Context, input ListReviewsInput) ([]domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, pageErrs := domain.ResolvePage(input.Page, input.PageSize, s.cfg.ReviewsPageSize, s.cfg.MaxPageSize)
	if len(pageErrs) > 0 {
		return nil, domain.NewValidationErrors(pageErrs)
	}

	reviews, err := s.reviews.ListByExperience(ctx, input.ExperienceID, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// AddReview records the authenticated user's review and recomputes the
// experience rating in the same transaction. A user reviews an experience
// at most once.
func (s *Service) AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created *domain.Review
		rating  *float64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.experiences.LockActive(txCtx, input.ExperienceID); err != nil {
			return fmt.Errorf("lock experience: %w", err)
		}

		var err error
		created, err = s.reviews.Create(txCtx, domain.Review{
			ID:           uuid.New(),
			ExperienceID: input.ExperienceID,
			UserID:       userID,
			Rating:       input.Rating,
			Comment:      trimOrNil(input.Comment),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		rating, err = s.experiences.RecomputeRating(txCtx, input.ExperienceID)
		if err != nil {
			return fmt.Errorf("recompute rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("experience_id", input.ExperienceID.String()),
		slog.Int("rating", input.Rating),
	}
	if rating != nil {
		attrs = append(attrs, slog.Float64("new_average", *rating))
	}
	s.log.InfoContext(ctx, "review added", attrs...)

	return created, nil
}
