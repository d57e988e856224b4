// Package post implements the read side of the social feed using PostgreSQL.
package post

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Repo provides feed queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type postRow struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	TripID          *uuid.UUID `db:"trip_id"`
	Content         string     `db:"content"`
	Location        *string    `db:"location"`
	Category        *string    `db:"category"`
	EstimatedBudget *float64   `db:"estimated_budget"`
	MediaURLs       []byte     `db:"media_urls"`
	CreatedAt       time.Time  `db:"created_at"`

	Username      string  `db:"username"`
	FullName      *string `db:"full_name"`
	AvatarURL     *string `db:"avatar_url"`
	LikesCount    int64   `db:"likes_count"`
	CommentsCount int64   `db:"comments_count"`
}

func (r postRow) toDomain() (domain.Post, error) {
	p := domain.Post{
		ID:              r.ID,
		UserID:          r.UserID,
		TripID:          r.TripID,
		Content:         r.Content,
		Location:        r.Location,
		Category:        r.Category,
		EstimatedBudget: r.EstimatedBudget,
		CreatedAt:       r.CreatedAt,
		Author: domain.UserSummary{
			ID:        r.UserID,
			Username:  r.Username,
			FullName:  r.FullName,
			AvatarURL: r.AvatarURL,
		},
		LikesCount:    int(r.LikesCount),
		CommentsCount: int(r.CommentsCount),
	}
	if len(r.MediaURLs) > 0 {
		if err := json.Unmarshal(r.MediaURLs, &p.MediaURLs); err != nil {
			return domain.Post{}, fmt.Errorf("decode media_urls of post %s: %w", r.ID, err)
		}
	}
	return p, nil
}

// buildFeedQuery selects active posts newest first. Counts come from
// correlated subqueries so likes and comments do not multiply each other.
func buildFeedQuery(f domain.FeedFilter) sq.SelectBuilder {
	q := postgres.Psql.
		Select(
			"p.id", "p.user_id", "p.trip_id", "p.content", "p.location", "p.category",
			"p.estimated_budget", "p.media_urls", "p.created_at",
			"u.username", "u.full_name", "u.avatar_url",
			"(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS likes_count",
			"(SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id) AS comments_count",
		).
		From("posts p").
		Join("users u ON u.id = p.user_id")

	if f.FollowerID != nil {
		q = q.Join("follows f ON f.following_id = p.user_id").
			Where(sq.Eq{"f.follower_id": *f.FollowerID})
	}

	q = q.Where("p.is_active = TRUE")

	if f.MaxBudget != nil {
		q = q.Where(sq.LtOrEq{"p.estimated_budget": *f.MaxBudget})
	}
	if f.Category != nil && *f.Category != "" {
		q = q.Where(sq.Eq{"p.category": *f.Category})
	}

	q = q.OrderBy("p.created_at DESC", "p.id ASC").Limit(uint64(f.Limit))
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	return q
}

// Feed returns one page of posts matching f.
func (r *Repo) Feed(ctx context.Context, f domain.FeedFilter) ([]domain.Post, error) {
	query, args, err := buildFeedQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build feed query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list posts")
	}

	result := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
