package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/pharmadmin/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the verified caller attached to the request context by the
// bearer middleware. Downstream route groups (medicines, blogs, ...) consume
// the same contract.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IdentityFromContext returns the verified identity set by RequireAuth.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

// RequireAuth verifies the bearer session token and attaches the resolved
// identity to the request context. Missing, malformed, invalid, or expired
// tokens are rejected with 401.
func (s *HTTPServer) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondWithMessage(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			respondWithMessage(w, http.StatusUnauthorized, "Bearer token required")
			return
		}

		claims, err := auth.ParseSessionToken(parts[1], s.jwtSecret)
		if err != nil {
			respondWithError(w, err)
			return
		}

		identity := &Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
