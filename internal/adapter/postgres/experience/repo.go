// Package experience implements the local experience repository using
// PostgreSQL: geo-ranked search, details, creation and rating aggregation.
package experience

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Repo provides experience persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new experience repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search returns one page of active experiences matching f. Results carry a
// distance only when f has an origin. An empty slice means no matches.
func (r *Repo) Search(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error) {
	query, args, err := buildSearchQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	var rows []experienceRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "search experiences")
	}

	result := make([]domain.Experience, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

// GetDetails returns an active experience with its creator and review
// statistics. Missing and inactive experiences are both domain.ErrNotFound.
func (r *Repo) GetDetails(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error) {
	query, args, err := postgres.Psql.
		Select(
			"le.id", "le.title", "le.description", "le.category", "le.latitude", "le.longitude",
			"le.address", "le.rating", "le.price_range", "le.contact_info", "le.opening_hours",
			"le.website", "le.is_active", "le.created_by", "le.created_at",
			"u.username AS creator_username",
			"u.full_name AS creator_full_name",
			"u.avatar_url AS creator_avatar_url",
			"(SELECT COUNT(*) FROM experience_reviews er WHERE er.experience_id = le.id) AS reviews_count",
			"(SELECT AVG(er.rating)::float8 FROM experience_reviews er WHERE er.experience_id = le.id) AS average_rating",
		).
		From(table + " le").
		LeftJoin("users u ON u.id = le.created_by").
		Where(sq.Eq{"le.id": id}).
		Where("le.is_active = TRUE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build details query: %w", err)
	}

	var row detailsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "experience "+id.String())
	}

	d := row.toDomain()
	return &d, nil
}

// Create inserts a new experience and returns the persisted record.
func (r *Repo) Create(ctx context.Context, e domain.Experience) (*domain.Experience, error) {
	query, args, err := postgres.Psql.
		Insert(table).
		Columns(
			"id", "title", "description", "category", "latitude", "longitude", "address",
			"price_range", "contact_info", "opening_hours", "website", "is_active", "created_by", "created_at",
		).
		Values(
			e.ID, e.Title, e.Description, string(e.Category), e.Location.Latitude, e.Location.Longitude, e.Address,
			e.PriceRange, jsonArg(e.ContactInfo), jsonArg(e.OpeningHours), e.Website, true, e.CreatedBy, e.CreatedAt,
		).
		Suffix("RETURNING id, title, description, category, latitude, longitude, address, rating, " +
			"price_range, contact_info, opening_hours, website, is_active, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row experienceRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "create experience")
	}

	created := row.toDomain()
	return &created, nil
}

// LockActive takes a row lock on an active experience for the rest of the
// surrounding transaction. It returns domain.ErrNotFound when the experience
// is missing or inactive.
func (r *Repo) LockActive(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Psql.
		Select("id").
		From(table).
		Where(sq.Eq{"id": id}).
		Where("is_active = TRUE").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock query: %w", err)
	}

	var locked uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		return postgres.MapError(err, "experience "+id.String())
	}
	return nil
}

// RecomputeRating sets the experience rating to the average of its reviews
// and returns the new value (nil when there are no reviews).
func (r *Repo) RecomputeRating(ctx context.Context, id uuid.UUID) (*float64, error) {
	query, args, err := postgres.Psql.
		Update(table).
		Set("rating", sq.Expr("(SELECT AVG(rating)::float8 FROM experience_reviews WHERE experience_id = ?)", id)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING rating").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rating update: %w", err)
	}

	var rating *float64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&rating); err != nil {
		return nil, postgres.MapError(err, "recompute rating "+id.String())
	}
	return rating, nil
}

// RecomputeAllRatings re-derives the rating of every reviewed experience
// whose stored value drifted from the review average. Experiences without
// reviews keep their rating. Returns the number of rows changed.
func (r *Repo) RecomputeAllRatings(ctx context.Context) (int64, error) {
	const query = `
		UPDATE local_experiences le
		SET rating = s.avg_rating
		FROM (
			SELECT experience_id, AVG(rating)::float8 AS avg_rating
			FROM experience_reviews
			GROUP BY experience_id
		) s
		WHERE s.experience_id = le.id
		  AND le.rating IS DISTINCT FROM s.avg_rating`

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query)
	if err != nil {
		return 0, postgres.MapError(err, "recompute all ratings")
	}
	return tag.RowsAffected(), nil
}
