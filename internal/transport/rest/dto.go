package rest

import (
	"encoding/json"
	"time"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// experienceResponse is the search projection. Distance is present only
// when the query carried an origin.
type experienceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     *string   `json:"address"`
	Rating      *float64  `json:"rating"`
	PriceRange  *string   `json:"priceRange"`
	CreatedAt   time.Time `json:"createdAt"`
	Distance    *float64  `json:"distance,omitempty"`
}

type experienceDetailsResponse struct {
	experienceResponse
	ContactInfo   json.RawMessage `json:"contactInfo"`
	OpeningHours  json.RawMessage `json:"openingHours"`
	Website       *string         `json:"website"`
	CreatedBy     *string         `json:"createdBy"`
	Creator       *userResponse   `json:"creator,omitempty"`
	ReviewsCount  int             `json:"reviewsCount"`
	AverageRating *float64        `json:"averageRating"`
}

type userResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
}

type reviewResponse struct {
	ID           string        `json:"id"`
	ExperienceID string        `json:"experienceId"`
	UserID       string        `json:"userId"`
	Rating       int           `json:"rating"`
	Comment      *string       `json:"comment"`
	CreatedAt    time.Time     `json:"createdAt"`
	Author       *userResponse `json:"author,omitempty"`
}

type postResponse struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	TripID          *string      `json:"tripId"`
	Content         string       `json:"content"`
	Location        *string      `json:"location"`
	Category        *string      `json:"category"`
	EstimatedBudget *float64     `json:"estimatedBudget"`
	MediaURLs       []string     `json:"mediaUrls"`
	CreatedAt       time.Time    `json:"createdAt"`
	Author          userResponse `json:"author"`
	LikesCount      int          `json:"likesCount"`
	CommentsCount   int          `json:"commentsCount"`
}

type commentResponse struct {
	ID        string       `json:"id"`
	PostID    string       `json:"postId"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Author    userResponse `json:"author"`
}

func toExperienceResponse(e domain.Experience) experienceResponse {
	return experienceResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category.String(),
		Latitude:    e.Location.Latitude,
		Longitude:   e.Location.Longitude,
		Address:     e.Address,
		Rating:      e.Rating,
		PriceRange:  e.PriceRange,
		CreatedAt:   e.CreatedAt,
		Distance:    e.DistanceKm,
	}
}

func toExperienceResponses(list []domain.Experience) []experienceResponse {
	out := make([]experienceResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExperienceResponse(e))
	}
	return out
}

func toExperienceDetailsResponse(d domain.ExperienceDetails) experienceDetailsResponse {
	resp := experienceDetailsResponse{
		experienceResponse: toExperienceResponse(d.Experience),
		ContactInfo:        jsonOrNull(d.ContactInfo),
		OpeningHours:       jsonOrNull(d.OpeningHours),
		Website:            d.Website,
		ReviewsCount:       d.ReviewsCount,
		AverageRating:      d.AverageRating,
	}
	if d.CreatedBy != nil {
		s := d.CreatedBy.String()
		resp.CreatedBy = &s
	}
	if d.Creator != nil {
		u := toUserResponse(*d.Creator)
		resp.Creator = &u
	}
	return resp
}

func toUserResponse(u domain.UserSummary) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

func toReviewResponse(r domain.Review) reviewResponse {
	resp := reviewResponse{
		ID:           r.ID.String(),
		ExperienceID: r.ExperienceID.String(),
		UserID:       r.UserID.String(),
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
	if r.Author != nil {
		u := toUserResponse(*r.Author)
		resp.Author = &u
	}
	return resp
}

func toReviewResponses(list []domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReviewResponse(r))
	}
	return out
}

func toPostResponses(list []domain.Post) []postResponse {
	out := make([]postResponse, 0, len(list))
	for _, p := range list {
		resp := postResponse{
			ID:              p.ID.String(),
			UserID:          p.UserID.String(),
			Content:         p.Content,
			Location:        p.Location,
			Category:        p.Category,
			EstimatedBudget: p.EstimatedBudget,
			MediaURLs:       p.MediaURLs,
			CreatedAt:       p.CreatedAt,
			Author:          toUserResponse(p.Author),
			LikesCount:      p.LikesCount,
			CommentsCount:   p.CommentsCount,
		}
		if p.TripID != nil {
			s := p.TripID.String()
			resp.TripID = &s
		}
		if resp.MediaURLs == nil {
			resp.MediaURLs = []string{}
		}
		out = append(out, resp)
	}
	return out
}

func toUserResponses(list []domain.UserSummary) []userResponse {
	out := make([]userResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toCommentResponses(list []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, commentResponse{
			ID:        c.ID.String(),
			PostID:    c.PostID.String(),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author:    toUserResponse(c.Author),
		})
	}
	return out
}

func jsonOrNull(doc json.RawMessage) json.RawMessage {
	if len(doc) == 0 {
		return json.RawMessage("null")
	}
	return doc
}
