package domain

import "github.com/google/uuid"

// UserSummary is the public projection of a user attached to experiences,
// reviews and posts.
type UserSummary struct {
	ID        uuid.UUID
	Username  string
	FullName  *string
	AvatarURL *string
}
