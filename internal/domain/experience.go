package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Experience is a point of interest that can be discovered by text,
// category and proximity. Inactive experiences are never returned by reads.
type Experience struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	Category     Category
	Location     GeoPoint
	Address      *string
	Rating       *float64
	PriceRange   *string
	ContactInfo  json.RawMessage
	OpeningHours json.RawMessage
	Website      *string
	IsActive     bool
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time

	// DistanceKm is set only when the experience was ranked against an origin.
	DistanceKm *float64
}

// ExperienceDetails is an experience with its creator and review statistics.
type ExperienceDetails struct {
	Experience
	Creator       *UserSummary
	ReviewsCount  int
	AverageRating *float64
}

// Review is a single user's rating of an experience.
type Review struct {
	ID           uuid.UUID
	ExperienceID uuid.UUID
	UserID       uuid.UUID
	Rating       int
	Comment      *string
	CreatedAt    time.Time

	Author *UserSummary
}

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)
