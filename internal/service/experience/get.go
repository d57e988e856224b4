package experience

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Get returns an active experience with its creator and review statistics.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	details, err := s.experiences.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return details, nil
}
