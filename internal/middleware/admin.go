package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const headerAdminToken = "X-Admin-Token" //nolint:gosec // header name, not a credential

// AdminToken returns middleware that gates the admin API behind a shared
// token. tokenHash is a bcrypt hash produced by `sitekit admin hash-token`;
// an empty hash disables the admin surface entirely.
func AdminToken(tokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenHash == "" {
				writeAuthError(w, http.StatusServiceUnavailable, "admin API is disabled")
				return
			}

			token := r.Header.Get(headerAdminToken)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "missing admin token")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
