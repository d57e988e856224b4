package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds the request context with d so that store round trips made
// while serving the request are cancelled once it elapses. A non-positive d
// disables the deadline.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
