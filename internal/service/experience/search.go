package experience

import (
	"context"
	"fmt"
	"strings"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Search returns one page of active experiences matching the criteria.
// With coordinates the results are annotated with their distance, limited
// to the radius (inclusive) and ordered nearest first; otherwise they are
// ordered newest first. Ties break on ID ascending.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Experience, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, pageErrs := domain.ResolvePage(input.Page, input.PageSize, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	if len(pageErrs) > 0 {
		return nil, domain.NewValidationErrors(pageErrs)
	}

	filter := domain.ExperienceFilter{
		Limit:  page.Size,
		Offset: page.Offset(),
	}

	if input.Query != nil && strings.TrimSpace(*input.Query) != "" {
		q := *input.Query
		filter.Text = &q
	}
	if input.Category != nil {
		c := domain.Category(*input.Category)
		filter.Category = &c
	}
	if input.Latitude != nil && input.Longitude != nil {
		filter.Origin = &domain.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
		filter.RadiusKm = s.cfg.DefaultRadiusKm
		if input.RadiusKm != nil {
			filter.RadiusKm = *input.RadiusKm
		}
	}

	result, err := s.experiences.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search experiences: %w", err)
	}
	return result, nil
}

// Nearby returns the closest active experiences around a point, within the
// radius and capped at the configured nearby limit.
func (s *Service) Nearby(ctx context.Context, input NearbyInput) ([]domain.Experience, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	radius := s.cfg.NearbyRadiusKm
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}

	result, err := s.experiences.Search(ctx, domain.ExperienceFilter{
		Origin:   &domain.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude},
		RadiusKm: radius,
		Limit:    s.cfg.NearbyLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("nearby experiences: %w", err)
	}
	return result, nil
}
