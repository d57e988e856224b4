package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/transport/middleware"
	"github.com/wayfarer-app/wayfarer-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps holds everything the HTTP router dispatches to.
type RouterDeps struct {
	Health      *rest.HealthHandler
	Experiences *rest.ExperienceHandler
	Feed        *rest.FeedHandler
	Social      *rest.SocialHandler
	Tokens      tokenValidator
	Limiter     *middleware.RateLimiter

	CORS            config.CORSConfig
	SearchPerMinute int
	RequestTimeout  time.Duration
}

// NewRouter builds the mux and wraps it in the global middleware chain.
// Public reads are anonymous; writes and personal feeds require a token.
// Search and nearby queries are rate limited per client IP.
func NewRouter(log *slog.Logger, d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	search := d.Limiter.Limit("search", d.SearchPerMinute)(http.HandlerFunc(d.Experiences.Search))
	mux.Handle("GET /search", search)
	mux.Handle("GET /experiences/search", search)
	mux.Handle("GET /experiences/local", d.Limiter.Limit("nearby", d.SearchPerMinute)(http.HandlerFunc(d.Experiences.Nearby)))
	mux.HandleFunc("GET /experiences/{id}", d.Experiences.Get)
	mux.Handle("POST /experiences", middleware.RequireAuth(http.HandlerFunc(d.Experiences.Create)))
	mux.HandleFunc("GET /experiences/{id}/reviews", d.Experiences.ListReviews)
	mux.Handle("POST /experiences/{id}/reviews", middleware.RequireAuth(http.HandlerFunc(d.Experiences.AddReview)))

	mux.HandleFunc("GET /posts/feed", d.Feed.Public)
	mux.Handle("GET /posts/following", middleware.RequireAuth(http.HandlerFunc(d.Feed.Following)))
	mux.Handle("GET /posts/curated", middleware.RequireAuth(http.HandlerFunc(d.Feed.Curated)))
	mux.HandleFunc("GET /posts/{id}/comments", d.Social.Comments)

	mux.HandleFunc("GET /users/{id}/followers", d.Social.Followers)
	mux.HandleFunc("GET /users/{id}/following", d.Social.Following)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(log),
		middleware.Timeout(d.RequestTimeout),
	)(mux)
}
