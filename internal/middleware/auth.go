package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopstack/products-api/internal/api/httpx"
	"github.com/shopstack/products-api/internal/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFrom returns the token claims attached by RequireToken.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

type AuthMiddleware struct {
	tm *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tm: tm}
}

// RequireToken gates a route on a valid bearer token: no token at all is
// 401, a token that fails verification is 403.
func (m *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteMessage(w, http.StatusUnauthorized, "Authentication token missing.")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])
		if token == "" {
			httpx.WriteMessage(w, http.StatusUnauthorized, "Authentication token missing.")
			return
		}

		claims, err := m.tm.Parse(token)
		if err != nil {
			httpx.WriteMessage(w, http.StatusForbidden, "Invalid or expired token.")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
