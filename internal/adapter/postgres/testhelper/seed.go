package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.UserSummary {
	t.Helper()

	suffix := uniqueSuffix()
	fullName := "Test User " + suffix
	user := domain.UserSummary{
		ID:       uuid.New(),
		Username: "traveler_" + suffix,
		FullName: &fullName,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, full_name) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Username+"@example.com", user.FullName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// ExperienceOpt customizes an experience before SeedExperience inserts it.
type ExperienceOpt func(*domain.Experience)

// WithTitle sets the title.
func WithTitle(title string) ExperienceOpt {
	return func(e *domain.Experience) { e.Title = title }
}

// WithDescription sets the description.
func WithDescription(desc string) ExperienceOpt {
	return func(e *domain.Experience) { e.Description = &desc }
}

// WithCategory sets the category.
func WithCategory(c domain.Category) ExperienceOpt {
	return func(e *domain.Experience) { e.Category = c }
}

// WithLocation sets the coordinates.
func WithLocation(lat, lng float64) ExperienceOpt {
	return func(e *domain.Experience) { e.Location = domain.GeoPoint{Latitude: lat, Longitude: lng} }
}

// WithCreatedAt sets the creation time.
func WithCreatedAt(at time.Time) ExperienceOpt {
	return func(e *domain.Experience) { e.CreatedAt = at.UTC().Truncate(time.Microsecond) }
}

// WithCreator sets created_by.
func WithCreator(id uuid.UUID) ExperienceOpt {
	return func(e *domain.Experience) { e.CreatedBy = &id }
}

// Inactive marks the experience as deactivated.
func Inactive() ExperienceOpt {
	return func(e *domain.Experience) { e.IsActive = false }
}

// SeedExperience inserts an active Food experience at (0, 0) unless opts say
// otherwise. The title carries a unique suffix so tests can scope text
// searches to their own rows.
func SeedExperience(t *testing.T, pool *pgxpool.Pool, opts ...ExperienceOpt) domain.Experience {
	t.Helper()

	e := domain.Experience{
		ID:        uuid.New(),
		Title:     "Experience " + uniqueSuffix(),
		Category:  domain.CategoryFood,
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&e)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO local_experiences
		 (id, title, description, category, latitude, longitude, is_active, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Title, e.Description, string(e.Category), e.Location.Latitude, e.Location.Longitude,
		e.IsActive, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExperience: %v", err)
	}

	return e
}

// SeedReview inserts a review without touching the experience rating.
func SeedReview(t *testing.T, pool *pgxpool.Pool, experienceID, userID uuid.UUID, rating int) domain.Review {
	t.Helper()

	r := domain.Review{
		ID:           uuid.New(),
		ExperienceID: experienceID,
		UserID:       userID,
		Rating:       rating,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO experience_reviews (id, experience_id, user_id, rating, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.ExperienceID, r.UserID, r.Rating, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}

	return r
}

// SeedPost inserts an active post for userID.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category string, budget float64, createdAt time.Time) domain.Post {
	t.Helper()

	p := domain.Post{
		ID:              uuid.New(),
		UserID:          userID,
		Content:         "Post " + uniqueSuffix(),
		Category:        &category,
		EstimatedBudget: &budget,
		MediaURLs:       []string{"https://cdn.example.com/" + uniqueSuffix() + ".jpg"},
		CreatedAt:       createdAt.UTC().Truncate(time.Microsecond),
	}

	media, err := json.Marshal(p.MediaURLs)
	if err != nil {
		t.Fatalf("testhelper: SeedPost marshal media: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO posts (id, user_id, content, category, estimated_budget, media_urls, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UserID, p.Content, p.Category, p.EstimatedBudget, media, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return p
}

// SeedFollow records that follower follows following.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, follower, following uuid.UUID) {
	t.Helper()
	SeedFollowAt(t, pool, follower, following, time.Now())
}

// SeedFollowAt records a follow made at the given time.
func SeedFollowAt(t *testing.T, pool *pgxpool.Pool, follower, following uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO follows (follower_id, following_id, created_at) VALUES ($1, $2, $3)`,
		follower, following, at.UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow: %v", err)
	}
}

// SeedLike inserts a like from userID on postID.
func SeedLike(t *testing.T, pool *pgxpool.Pool, postID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`,
		postID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLike: %v", err)
	}
}

// SeedComment inserts a comment from userID on postID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, postID, userID uuid.UUID) domain.Comment {
	t.Helper()
	return SeedCommentAt(t, pool, postID, userID, time.Now())
}

// SeedCommentAt inserts a comment written at the given time.
func SeedCommentAt(t *testing.T, pool *pgxpool.Pool, postID, userID uuid.UUID, at time.Time) domain.Comment {
	t.Helper()

	c := domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		Content:   "comment " + uniqueSuffix(),
		CreatedAt: at.UTC().Truncate(time.Microsecond),
		Author:    domain.UserSummary{ID: userID},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO post_comments (id, post_id, user_id, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.PostID, userID, c.Content, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCommentAt: %v", err)
	}

	return c
}
