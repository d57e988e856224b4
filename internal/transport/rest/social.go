package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/social"
)

type socialService interface {
	Comments(ctx context.Context, input social.ListInput) ([]domain.Comment, error)
	Followers(ctx context.Context, input social.ListInput) ([]domain.UserSummary, error)
	Following(ctx context.Context, input social.ListInput) ([]domain.UserSummary, error)
}

// SocialHandler serves post comments and follow lists.
type SocialHandler struct {
	svc socialService
	log *slog.Logger
}

// NewSocialHandler creates a SocialHandler.
func NewSocialHandler(svc socialService, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{svc: svc, log: logger.With("handler", "social")}
}

// Comments handles GET /posts/{id}/comments.
func (h *SocialHandler) Comments(w http.ResponseWriter, r *http.Request) {
	input, ok := h.listInput(w, r)
	if !ok {
		return
	}

	comments, err := h.svc.Comments(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponses(comments))
}

// Followers handles GET /users/{id}/followers.
func (h *SocialHandler) Followers(w http.ResponseWriter, r *http.Request) {
	h.users(w, r, h.svc.Followers)
}

// Following handles GET /users/{id}/following.
func (h *SocialHandler) Following(w http.ResponseWriter, r *http.Request) {
	h.users(w, r, h.svc.Following)
}

func (h *SocialHandler) users(w http.ResponseWriter, r *http.Request, list func(context.Context, social.ListInput) ([]domain.UserSummary, error)) {
	input, ok := h.listInput(w, r)
	if !ok {
		return
	}

	users, err := list(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// listInput reads the owner id from the path and the page from the query.
// It writes the error response itself and reports whether to continue.
func (h *SocialHandler) listInput(w http.ResponseWriter, r *http.Request) (social.ListInput, bool) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return social.ListInput{}, false
	}

	q := newQueryParser(r)
	input := social.ListInput{ID: id, Page: q.Int("page"), PageSize: q.Int("limit")}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return social.ListInput{}, false
	}
	return input, true
}
