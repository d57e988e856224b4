// Package follow reads the follower graph from PostgreSQL.
package follow

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Repo lists followers and followed users.
type Repo struct {
	db postgres.Querier
}

// New creates a new follow repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	FullName  *string   `db:"full_name"`
	AvatarURL *string   `db:"avatar_url"`
}

// direction names the follows column matched against the given user and
// the column joined to users.
type direction struct {
	match, join string
}

var (
	followersOf = direction{match: "f.following_id", join: "f.follower_id"}
	followingOf = direction{match: "f.follower_id", join: "f.following_id"}
)

// buildListQuery orders by follow time, most recent first.
func buildListQuery(d direction, userID uuid.UUID, limit, offset int) sq.SelectBuilder {
	q := postgres.Psql.
		Select("u.id", "u.username", "u.full_name", "u.avatar_url").
		From("follows f").
		Join("users u ON u.id = " + d.join).
		Where(sq.Eq{d.match: userID}).
		OrderBy("f.created_at DESC", "u.id ASC").
		Limit(uint64(limit))
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	return q
}

// ListFollowers returns one page of the users following userID.
func (r *Repo) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.UserSummary, error) {
	return r.list(ctx, followersOf, userID, limit, offset)
}

// ListFollowing returns one page of the users userID follows.
func (r *Repo) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.UserSummary, error) {
	return r.list(ctx, followingOf, userID, limit, offset)
}

func (r *Repo) list(ctx context.Context, d direction, userID uuid.UUID, limit, offset int) ([]domain.UserSummary, error) {
	query, args, err := buildListQuery(d, userID, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build follows query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list follows")
	}

	result := make([]domain.UserSummary, len(rows))
	for i, row := range rows {
		result[i] = domain.UserSummary{
			ID:        row.ID,
			Username:  row.Username,
			FullName:  row.FullName,
			AvatarURL: row.AvatarURL,
		}
	}
	return result, nil
}
