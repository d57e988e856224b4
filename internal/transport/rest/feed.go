package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/feed"
)

type feedService interface {
	Public(ctx context.Context, input feed.PageInput) ([]domain.Post, error)
	Following(ctx context.Context, input feed.PageInput) ([]domain.Post, error)
	Curated(ctx context.Context, input feed.CuratedInput) ([]domain.Post, error)
}

// FeedHandler serves the post feeds.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

// Public handles GET /posts/feed.
func (h *FeedHandler) Public(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := pageInput(q)
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.respond(w, r)(h.svc.Public(r.Context(), input))
}

// Following handles GET /posts/following.
func (h *FeedHandler) Following(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := pageInput(q)
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.respond(w, r)(h.svc.Following(r.Context(), input))
}

// Curated handles GET /posts/curated.
func (h *FeedHandler) Curated(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := feed.CuratedInput{
		PageInput: pageInput(q),
		MaxBudget: q.Float("budget"),
		Category:  q.String("category"),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.respond(w, r)(h.svc.Curated(r.Context(), input))
}

func (h *FeedHandler) respond(w http.ResponseWriter, r *http.Request) func([]domain.Post, error) {
	return func(posts []domain.Post, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponses(posts))
	}
}

func pageInput(q *queryParser) feed.PageInput {
	return feed.PageInput{Page: q.Int("page"), PageSize: q.Int("limit")}
}
