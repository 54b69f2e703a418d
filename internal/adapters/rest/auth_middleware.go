package rest

import (
	"context"
	"net/http"
	"strings"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type contextKey string

const claimsKey = contextKey("admin_claims")

type AuthMiddleware struct {
	tokens port.TokenServicePort
}

func NewAuthMiddleware(tokens port.TokenServicePort) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate - middleware для проверки JWT из заголовка Authorization.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := am.tokens.ValidateToken(r.Context(), tokenString)
		if err != nil {
			contextkeys.LoggerFromContext(r.Context()).Debug("Token rejected", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = contextkeys.ContextWithLogger(ctx,
			contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"admin_email": claims.Email}))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole - middleware для проверки роли, ставится после Authenticate.
func (am *AuthMiddleware) RequireRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if claims.Role != requiredRole {
				WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}
