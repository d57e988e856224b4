//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	experiencerepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/experience"
	postrepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/post"
	followrepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/follow"
	reviewrepo "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/review"
	"github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres/testhelper"
	"github.com/wayfarer-app/wayfarer-backend/internal/app"
	authpkg "github.com/wayfarer-app/wayfarer-backend/internal/auth"
	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/experience"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/feed"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/social"
	"github.com/wayfarer-app/wayfarer-backend/internal/transport/middleware"
	"github.com/wayfarer-app/wayfarer-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	experienceRepo := experiencerepo.New(pool)
	reviewRepo := reviewrepo.New(pool)
	postRepo := postrepo.New(pool)
	followRepo := followrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 5. Services.
	experienceService := experience.NewService(logger, experienceRepo, reviewRepo, txm, config.SearchConfig{
		DefaultRadiusKm: 25,
		NearbyRadiusKm:  10,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		NearbyLimit:     50,
		ReviewsPageSize: 10,
	})
	feedService := feed.NewService(logger, postRepo, config.FeedConfig{DefaultPageSize: 10, MaxPageSize: 100})
	socialService := social.NewService(logger, postRepo, followRepo, config.SocialConfig{DefaultPageSize: 20, MaxPageSize: 100})

	// 6. Router with the production middleware chain.
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := app.NewRouter(logger, app.RouterDeps{
		Health:      rest.NewHealthHandler(pool, "test-version"),
		Experiences: rest.NewExperienceHandler(experienceService, logger),
		Feed:        rest.NewFeedHandler(feedService, logger),
		Social:      rest.NewSocialHandler(socialService, logger),
		Tokens:      jwtMgr,
		Limiter:     limiter,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		SearchPerMinute: 10000,
		RequestTimeout:  5 * time.Second,
	})

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// createTestUserWithID seeds a user and returns a valid access token for it.
// ---------------------------------------------------------------------------

func createTestUserWithID(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)

	tok, err := ts.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return tok, user.ID
}

// ---------------------------------------------------------------------------
// do sends a request and returns status + raw body. A non-nil body is
// encoded as JSON.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// getList issues a GET and decodes a JSON array response.
func (ts *testServer) getList(t *testing.T, path, token string) (int, []map[string]any) {
	t.Helper()

	status, raw := ts.do(t, http.MethodGet, path, nil, token)
	if status != http.StatusOK {
		return status, nil
	}
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

// object issues a request and decodes a JSON object response.
func (ts *testServer) object(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}
