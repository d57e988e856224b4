package domain

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ResolvePage applies defaults to an optional page request and checks it:
// the page number must be at least 1 and the size within [1, maxSize].
// Pages whose offset would not fit in an int are rejected.
func ResolvePage(number, size *int, defaultSize, maxSize int) (Page, []FieldError) {
	p := Page{Number: 1, Size: defaultSize}
	if number != nil {
		p.Number = *number
	}
	if size != nil {
		p.Size = *size
	}

	var errs []FieldError
	sizeOK := p.Size >= 1 && p.Size <= maxSize
	switch {
	case p.Number < 1:
		errs = append(errs, FieldError{Field: "page", Message: "must be at least 1"})
	case sizeOK && p.Number-1 > math.MaxInt/p.Size:
		errs = append(errs, FieldError{Field: "page", Message: "too large"})
	}
	if !sizeOK {
		errs = append(errs, FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxSize)})
	}
	return p, errs
}

// ExperienceFilter is the typed set of search predicates consumed by the
// experience repository. Nil fields mean "no constraint".
type ExperienceFilter struct {
	// Text matches case-insensitively against title or description.
	Text *string
	// Category is an exact match.
	Category *Category
	// Origin enables distance annotation, the radius filter and
	// nearest-first ordering.
	Origin *GeoPoint
	// RadiusKm bounds the distance from Origin (inclusive). Ignored without Origin.
	RadiusKm float64

	Limit  int
	Offset int
}

// Sort returns the ordering implied by the filter.
func (f ExperienceFilter) Sort() SortOrder {
	if f.Origin != nil {
		return SortNearest
	}
	return SortNewest
}

// FeedFilter selects posts for the feed endpoints.
type FeedFilter struct {
	// FollowerID limits the feed to authors followed by this user.
	FollowerID *uuid.UUID
	// MaxBudget keeps posts whose estimated budget is at most this value.
	MaxBudget *float64
	Category  *string

	Limit  int
	Offset int
}
