package rest

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// queryParser reads optional query parameters, collecting a field error for
// every value that is present but malformed.
type queryParser struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

// String returns nil for an absent or empty parameter.
func (p *queryParser) String(name string) *string {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

// Float returns nil for an absent or empty parameter.
func (p *queryParser) Float(name string) *float64 {
	raw := strings.TrimSpace(p.r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be a number"})
		return nil
	}
	return &v
}

// Int returns nil for an absent or empty parameter.
func (p *queryParser) Int(name string) *int {
	raw := strings.TrimSpace(p.r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &v
}

// Err returns the collected errors as a single validation error.
func (p *queryParser) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

// pathID parses the {id} path segment. A malformed ID cannot match any
// record, so it is reported as not found.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}
