// Package review implements the experience review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

const table = "experience_reviews"

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reviewRow struct {
	ID           uuid.UUID `db:"id"`
	ExperienceID uuid.UUID `db:"experience_id"`
	UserID       uuid.UUID `db:"user_id"`
	Rating       int       `db:"rating"`
	Comment      *string   `db:"comment"`
	CreatedAt    time.Time `db:"created_at"`

	Username  *string `db:"username"`
	FullName  *string `db:"full_name"`
	AvatarURL *string `db:"avatar_url"`
}

func (r reviewRow) toDomain() domain.Review {
	rv := domain.Review{
		ID:           r.ID,
		ExperienceID: r.ExperienceID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
	if r.Username != nil {
		rv.Author = &domain.UserSummary{
			ID:        r.UserID,
			Username:  *r.Username,
			FullName:  r.FullName,
			AvatarURL: r.AvatarURL,
		}
	}
	return rv
}

// ListByExperience returns one page of reviews for an experience, newest
// first, each with its author.
func (r *Repo) ListByExperience(ctx context.Context, experienceID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	q := postgres.Psql.
		Select(
			"er.id", "er.experience_id", "er.user_id", "er.rating", "er.comment", "er.created_at",
			"u.username", "u.full_name", "u.avatar_url",
		).
		From(table + " er").
		Join("users u ON u.id = er.user_id").
		Where(sq.Eq{"er.experience_id": experienceID}).
		OrderBy("er.created_at DESC", "er.id ASC").
		Limit(uint64(limit))
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reviews query: %w", err)
	}

	var rows []reviewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list reviews")
	}

	result := make([]domain.Review, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

// Create inserts a review. A second review by the same user for the same
// experience yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	query, args, err := postgres.Psql.
		Insert(table).
		Columns("id", "experience_id", "user_id", "rating", "comment", "created_at").
		Values(rv.ID, rv.ExperienceID, rv.UserID, rv.Rating, rv.Comment, rv.CreatedAt).
		Suffix("RETURNING id, experience_id, user_id, rating, comment, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row reviewRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "review of experience "+rv.ExperienceID.String())
	}

	created := row.toDomain()
	return &created, nil
}
