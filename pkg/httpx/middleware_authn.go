package httpx

import (
	"context"
	"net/http"
	"strings"
)

// Authenticator resolves a presented bearer token into a user id. Every
// failure kind collapses into a single error; the implementation logs the
// internal reason.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// AuthnMiddleware extracts the Authorization bearer token, authenticates
// it, and injects the resolved user id into the request context. A missing
// or failing token yields a uniform 401 with no detail on which check
// failed.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			userID, err := a.Authenticate(ctx, raw)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
