package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

type errorResponse struct {
	Error   string          `json:"error"`
	Details []fieldResponse `json:"details,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps a service error onto an HTTP status. Anything not
// recognised, store outages included, is logged and reported as 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeValidation(w http.ResponseWriter, ve *domain.ValidationError) {
	details := make([]fieldResponse, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		details = append(details, fieldResponse{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error(), Details: details})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
