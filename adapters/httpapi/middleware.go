package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"homolo/internal"
)

// BearerAuth returns middleware that validates the Authorization header
// against the configured token. An empty token disables auth. Preflight and
// HEAD requests pass through so probes do not trip a 401.
func BearerAuth(token string) func(http.Handler) http.Handler {
	log := internal.DefaultLogger
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			if r.Method == http.MethodOptions || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				log.Warn("[Auth] missing bearer token: %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
				http.Error(w, `{"detail":"Missing Bearer token"}`, http.StatusUnauthorized)
				return
			}
			got := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.Warn("[Auth] invalid bearer token: %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
				http.Error(w, `{"detail":"Invalid Bearer token"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
