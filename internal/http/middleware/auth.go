package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rs/zerolog"
)

type contextKey string

const claimsKey = contextKey("claims")

// RequireWriteAuth demands a valid bearer token for every method except
// GET, HEAD and OPTIONS.
func RequireWriteAuth(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("subject", claims.Subject)
			})
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject returns the authenticated subject, or "" for anonymous requests.
func GetSubject(r *http.Request) string {
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims.Subject
	}
	return ""
}
