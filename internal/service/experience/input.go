package experience

import (
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

const (
	maxTitleLength   = 200
	maxCommentLength = 2000
)

// SearchInput holds the criteria of a discovery query. Nil fields are
// unconstrained or take their configured default.
type SearchInput struct {
	Query     *string
	Category  *string
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	Page      *int
	PageSize  *int
}

// Validate checks all fields and collects all errors. Page size bounds
// depend on configuration and are checked by the service.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateOrigin(i.Latitude, i.Longitude, false)...)
	errs = append(errs, validateRadius(i.RadiusKm)...)

	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NearbyInput holds the parameters of a map (nearby) query.
type NearbyInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// Validate checks all fields and collects all errors.
func (i NearbyInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateOrigin(i.Latitude, i.Longitude, true)...)
	errs = append(errs, validateRadius(i.RadiusKm)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for creating an experience.
type CreateInput struct {
	Title        string
	Description  *string
	Category     string
	Latitude     *float64
	Longitude    *float64
	Address      *string
	PriceRange   *string
	ContactInfo  json.RawMessage
	OpeningHours json.RawMessage
	Website      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	errs = append(errs, validateOrigin(i.Latitude, i.Longitude, true)...)

	if len(i.ContactInfo) > 0 && !isJSONObject(i.ContactInfo) {
		errs = append(errs, domain.FieldError{Field: "contactInfo", Message: "must be a JSON object"})
	}
	if len(i.OpeningHours) > 0 && !isJSONObject(i.OpeningHours) {
		errs = append(errs, domain.FieldError{Field: "openingHours", Message: "must be a JSON object"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListReviewsInput selects a page of an experience's reviews.
type ListReviewsInput struct {
	ExperienceID uuid.UUID
	Page         *int
	PageSize     *int
}

// Validate checks all fields and collects all errors.
func (i ListReviewsInput) Validate() error {
	if i.ExperienceID == uuid.Nil {
		return domain.NewValidationError("experience_id", "required")
	}
	return nil
}

// AddReviewInput holds the parameters for reviewing an experience.
type AddReviewInput struct {
	ExperienceID uuid.UUID
	Rating       int
	Comment      *string
}

// Validate checks all fields and collects all errors.
func (i AddReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.ExperienceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "experience_id", Message: "required"})
	}
	if i.Rating < domain.MinReviewRating || i.Rating > domain.MaxReviewRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Comment != nil && utf8.RuneCountInString(*i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateOrigin checks a latitude/longitude pair. Both or neither must be
// given; required demands both.
func validateOrigin(lat, lng *float64, required bool) []domain.FieldError {
	var errs []domain.FieldError

	switch {
	case lat == nil && lng == nil:
		if required {
			errs = append(errs,
				domain.FieldError{Field: "latitude", Message: "required"},
				domain.FieldError{Field: "longitude", Message: "required"},
			)
		}
		return errs
	case lat == nil:
		return append(errs, domain.FieldError{Field: "latitude", Message: "required with longitude"})
	case lng == nil:
		return append(errs, domain.FieldError{Field: "longitude", Message: "required with latitude"})
	}

	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if math.IsNaN(*lng) || *lng < -180 || *lng > 180 {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	return errs
}

func validateRadius(radius *float64) []domain.FieldError {
	if radius != nil && (math.IsNaN(*radius) || math.IsInf(*radius, 0) || *radius < 0) {
		return []domain.FieldError{{Field: "radius", Message: "must be a non-negative number"}}
	}
	return nil
}

func isJSONObject(doc json.RawMessage) bool {
	var obj map[string]any
	return json.Unmarshal(doc, &obj) == nil && obj != nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
