package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// BearerToken extracts the credential from an Authorization header.
// The header must be exactly two whitespace-separated fields with the
// first literally "Bearer".
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.Fields(h)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth rejects requests without a valid bearer token and puts
// the decoded claims on the request context. It never touches stored
// state.
func RequireAuth(ts *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := BearerToken(r)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "token is missing")
				return
			}
			claims, err := ts.Verify(tok)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "token is invalid or expired")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "error": msg})
}
