package rbac

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/auth"
)

var defaultChecker = NewChecker(nil)

// Require enforces a single permission against the role carried by the
// request's verified claims. It must sit behind auth.RequireAuth.
func Require(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.ClaimsFromContext(r.Context())
			if claims == nil || !defaultChecker.Has(claims.Role, perm) {
				forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAny enforces that the role has at least one of the permissions.
func RequireAny(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.ClaimsFromContext(r.Context())
			if claims == nil || !defaultChecker.Any(claims.Role, perms...) {
				forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "error": "admin access required"})
}
