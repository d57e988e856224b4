package experience

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/pkg/ctxutil"
)

// Create publishes a new experience on behalf of the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Experience, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.experiences.Create(ctx, domain.Experience{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Category:    domain.Category(input.Category),
		Location: domain.GeoPoint{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
		},
		Address:      trimOrNil(input.Address),
		PriceRange:   trimOrNil(input.PriceRange),
		ContactInfo:  input.ContactInfo,
		OpeningHours: input.OpeningHours,
		Website:      trimOrNil(input.Website),
		IsActive:     true,
		CreatedBy:    &userID,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.log.InfoContext(ctx, "experience created",
		slog.String("user_id", userID.String()),
		slog.String("experience_id", created.ID.String()),
		slog.String("category", string(created.Category)),
	)

	return created, nil
}
