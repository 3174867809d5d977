// BlogHub | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bloghub-dev/bloghub/internal/core"
)

type contextKey string

const (
	claimsKey contextKey = "jwt_claims"
)

// Claims is the decoded identity of an access token.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*Claims, error)
}

// Authenticate is the request guard: a missing Authorization header
// lets the request continue anonymously (handlers that need identity
// reject it themselves), while a present-but-invalid token fails
// closed with 401 before any handler runs.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				core.Unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose identity is absent or not an
// admin. It assumes Authenticate ran earlier in the chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())

		if claims == nil {
			core.Unauthorized(w, "authentication required")
			return
		}

		if claims.Role != "admin" {
			core.Forbidden(w, "insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetClaims(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

// WithClaims returns ctx carrying claims; used by tests and the guard.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func IsAuthenticated(ctx context.Context) bool {
	return GetClaims(ctx) != nil
}
