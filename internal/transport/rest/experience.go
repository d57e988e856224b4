package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/experience"
)

type experienceService interface {
	Search(ctx context.Context, input experience.SearchInput) ([]domain.Experience, error)
	Nearby(ctx context.Context, input experience.NearbyInput) ([]domain.Experience, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error)
	Create(ctx context.Context, input experience.CreateInput) (*domain.Experience, error)
	ListReviews(ctx context.Context, input experience.ListReviewsInput) ([]domain.Review, error)
	AddReview(ctx context.Context, input experience.AddReviewInput) (*domain.Review, error)
}

// ExperienceHandler serves experience discovery and review endpoints.
type ExperienceHandler struct {
	svc experienceService
	log *slog.Logger
}

// NewExperienceHandler creates an ExperienceHandler.
func NewExperienceHandler(svc experienceService, logger *slog.Logger) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, log: logger.With("handler", "experience")}
}

type createExperienceRequest struct {
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Category     string          `json:"category"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	Address      *string         `json:"address"`
	PriceRange   *string         `json:"priceRange"`
	ContactInfo  json.RawMessage `json:"contactInfo"`
	OpeningHours json.RawMessage `json:"openingHours"`
	Website      *string         `json:"website"`
}

type addReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// Search handles GET /search and GET /experiences/search.
func (h *ExperienceHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := experience.SearchInput{
		Query:     q.String("query"),
		Category:  q.String("category"),
		Latitude:  q.Float("latitude"),
		Longitude: q.Float("longitude"),
		RadiusKm:  q.Float("radius"),
		Page:      q.Int("page"),
		PageSize:  q.Int("limit"),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Search(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toExperienceResponses(result))
}

// Nearby handles GET /experiences/local.
func (h *ExperienceHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := experience.NearbyInput{
		Latitude:  q.Float("latitude"),
		Longitude: q.Float("longitude"),
		RadiusKm:  q.Float("radius"),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Nearby(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toExperienceResponses(result))
}

// Get handles GET /experiences/{id}.
func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	details, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toExperienceDetailsResponse(*details))
}

// Create handles POST /experiences.
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), experience.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Address:      req.Address,
		PriceRange:   req.PriceRange,
		ContactInfo:  nullAsEmpty(req.ContactInfo),
		OpeningHours: nullAsEmpty(req.OpeningHours),
		Website:      req.Website,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExperienceDetailsResponse(domain.ExperienceDetails{Experience: *created}))
}

// ListReviews handles GET /experiences/{id}/reviews.
func (h *ExperienceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := newQueryParser(r)
	input := experience.ListReviewsInput{
		ExperienceID: id,
		Page:         q.Int("page"),
		PageSize:     q.Int("limit"),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reviews, err := h.svc.ListReviews(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// AddReview handles POST /experiences/{id}/reviews.
func (h *ExperienceHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.svc.AddReview(r.Context(), experience.AddReviewInput{
		ExperienceID: id,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(*review))
}

// nullAsEmpty treats an explicit JSON null like an omitted document.
func nullAsEmpty(doc json.RawMessage) json.RawMessage {
	if string(doc) == "null" {
		return nil
	}
	return doc
}
