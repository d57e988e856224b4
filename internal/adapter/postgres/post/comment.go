package post

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

type commentRow struct {
	ID        uuid.UUID `db:"id"`
	PostID    uuid.UUID `db:"post_id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	Username  string  `db:"username"`
	FullName  *string `db:"full_name"`
	AvatarURL *string `db:"avatar_url"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		PostID:    r.PostID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		Author: domain.UserSummary{
			ID:        r.UserID,
			Username:  r.Username,
			FullName:  r.FullName,
			AvatarURL: r.AvatarURL,
		},
	}
}

func buildCommentsQuery(postID uuid.UUID, limit, offset int) sq.SelectBuilder {
	q := postgres.Psql.
		Select(
			"pc.id", "pc.post_id", "pc.user_id", "pc.content", "pc.created_at",
			"u.username", "u.full_name", "u.avatar_url",
		).
		From("post_comments pc").
		Join("users u ON u.id = pc.user_id").
		Where(sq.Eq{"pc.post_id": postID}).
		OrderBy("pc.created_at DESC", "pc.id ASC").
		Limit(uint64(limit))
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	return q
}

// ListComments returns one page of a post's comments, newest first. An
// unknown post yields an empty page.
func (r *Repo) ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	query, args, err := buildCommentsQuery(postID, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comments query: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list comments")
	}

	result := make([]domain.Comment, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}
