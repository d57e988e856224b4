package experience

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// experienceRow is the scan target for local_experiences. Columns absent
// from a given projection keep their zero values.
type experienceRow struct {
	ID           uuid.UUID  `db:"id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	Category     string     `db:"category"`
	Latitude     float64    `db:"latitude"`
	Longitude    float64    `db:"longitude"`
	Address      *string    `db:"address"`
	Rating       *float64   `db:"rating"`
	PriceRange   *string    `db:"price_range"`
	ContactInfo  []byte     `db:"contact_info"`
	OpeningHours []byte     `db:"opening_hours"`
	Website      *string    `db:"website"`
	IsActive     *bool      `db:"is_active"`
	CreatedBy    *uuid.UUID `db:"created_by"`
	CreatedAt    time.Time  `db:"created_at"`
	Distance     *float64   `db:"distance"`
}

// detailsRow adds the creator projection and review statistics.
type detailsRow struct {
	experienceRow

	CreatorUsername  *string  `db:"creator_username"`
	CreatorFullName  *string  `db:"creator_full_name"`
	CreatorAvatarURL *string  `db:"creator_avatar_url"`
	ReviewsCount     int64    `db:"reviews_count"`
	AverageRating    *float64 `db:"average_rating"`
}

func (r experienceRow) toDomain() domain.Experience {
	e := domain.Experience{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.Category(r.Category),
		Location: domain.GeoPoint{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		Address:    r.Address,
		Rating:     r.Rating,
		PriceRange: r.PriceRange,
		Website:    r.Website,
		IsActive:   true,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		DistanceKm: r.Distance,
	}
	// Search projections omit is_active; they only ever return active rows.
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
	if len(r.ContactInfo) > 0 {
		e.ContactInfo = json.RawMessage(r.ContactInfo)
	}
	if len(r.OpeningHours) > 0 {
		e.OpeningHours = json.RawMessage(r.OpeningHours)
	}
	return e
}

func (r detailsRow) toDomain() domain.ExperienceDetails {
	d := domain.ExperienceDetails{
		Experience:    r.experienceRow.toDomain(),
		ReviewsCount:  int(r.ReviewsCount),
		AverageRating: r.AverageRating,
	}
	if r.CreatedBy != nil && r.CreatorUsername != nil {
		d.Creator = &domain.UserSummary{
			ID:        *r.CreatedBy,
			Username:  *r.CreatorUsername,
			FullName:  r.CreatorFullName,
			AvatarURL: r.CreatorAvatarURL,
		}
	}
	return d
}

// jsonArg turns an optional JSON document into a query argument; empty
// documents are stored as NULL.
func jsonArg(doc json.RawMessage) any {
	if len(doc) == 0 {
		return nil
	}
	return []byte(doc)
}
