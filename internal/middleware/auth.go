package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/models"
)

type contextKey string

const principalCtxKey contextKey = "principal"

// Authenticator verifies request credentials against the user directory.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// protectedPrefixes is the route policy table: requests under these path
// prefixes require an authenticated identity, everything else is open.
var protectedPrefixes = []string{
	"/user",
	"/journal",
}

// RequiresAuth reports whether the policy table protects the given path.
func RequiresAuth(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// BasicAuth authenticates protected requests with HTTP Basic credentials.
// Each request re-authenticates; no session state is kept. On success the
// resolved username is attached to the request context as the principal.
func BasicAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RequiresAuth(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			user, err := auth.Authenticate(r.Context(), username, password)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), principalCtxKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Principal returns the authenticated username attached by BasicAuth.
func Principal(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(principalCtxKey).(string)
	return username, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="daybook"`)
	common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
}
