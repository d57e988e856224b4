package middleware

import (
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/pkg/ctxutil"
)

// maxRequestIDLength bounds client-supplied request IDs that end up in logs.
const maxRequestIDLength = 128

// RequestID propagates X-Request-Id, generating a UUID when the client did
// not send a usable one. It also records the caller's IP for the rate
// limiter and the request log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" || len(id) > maxRequestIDLength || !printableASCII(id) {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		ctx = ctxutil.WithClientIP(ctx, remoteHost(r))
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// remoteHost strips the port from RemoteAddr so that one client's
// connections share an identity.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
