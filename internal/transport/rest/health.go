package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds a single store ping so a stuck pool cannot hang the
// orchestrator's health checks.
const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler reporting the given build version.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live handles GET /live. It never touches PostgreSQL.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready handles GET /ready: 200 while the pool answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkPostgres(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health handles GET /health: readiness plus the version and the
// PostgreSQL round-trip latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkPostgres(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"postgres": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkPostgres(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
