package middleware

import (
	"context"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "admin_claims"

// RequireAdmin rejects requests that do not carry a valid bearer token.
// A missing token yields 401; a malformed or expired one yields 403.
func RequireAdmin(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Acesso não autorizado. Token não fornecido.", err)
				return
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				respond.Error(w, r, http.StatusForbidden, "Acesso negado. Token inválido ou expirado.", err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the authenticated admin's claims, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}
