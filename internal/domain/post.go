package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed item shared by a user.
type Post struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TripID          *uuid.UUID
	Content         string
	Location        *string
	Category        *string
	EstimatedBudget *float64
	MediaURLs       []string
	CreatedAt       time.Time

	Author        UserSummary
	LikesCount    int
	CommentsCount int
}

// Comment is a reply on a post.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Content   string
	CreatedAt time.Time

	Author UserSummary
}
