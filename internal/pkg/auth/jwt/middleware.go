package jwt

import (
	"context"
	"net/http"
	"strings"

	"brana/internal/pkg/errs"
	"brana/internal/pkg/logx"
	"brana/internal/pkg/resp"
)

// contextKey is private to prevent key collisions with other packages.
type contextKey string

// contextClaimsKey is the key under which verified Claims live in the request context.
const contextClaimsKey contextKey = "auth_claims"

// Authenticate extracts and verifies the bearer token on r.
// It returns either the verified claims or a rejection, never both.
// The check is purely cryptographic: no persistence layer is consulted.
func Authenticate(r *http.Request, secretKey string) (*Claims, *errs.CustomError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	claims, err := Parse(parts[1], secretKey)
	if err != nil {
		logx.Warn("Rejected bearer token", "error", err)
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	return claims, nil
}

// RequireAuth returns middleware guarding protected routes. A request without
// a verifiable bearer token is rejected with 401 before the wrapped handler
// runs; on success the claims are injected into the request context.
func RequireAuth(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, rejection := Authenticate(r, secretKey)
			if rejection != nil {
				resp.RespondError(w, r, rejection)
				return
			}

			ctx := context.WithValue(r.Context(), contextClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the verified Claims stored by RequireAuth, or nil when
// the request did not pass through the guard.
func FromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(contextClaimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
