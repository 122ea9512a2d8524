package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/schoolforge/sitebuilder-backend/internal/api/http"
	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
	"github.com/schoolforge/sitebuilder-backend/internal/auth"
	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
)

const (
	msgMissingHeader = "authorization header is required"
	msgBadFormat     = "invalid authorization format"
)

// Verifier resolves a raw bearer token to the caller it was issued for.
type Verifier interface {
	VerifyToken(ctx context.Context, raw string) (*domain.Identity, error)
}

// BearerAuthMiddleware validates the bearer token and stores the caller's
// identity in the context. Requests without a valid token are rejected with 401.
func BearerAuthMiddleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			httpapi.WriteError(c, apperr.Unauthenticated(msgMissingHeader))
			return
		}

		token, ok := extractToken(header)
		if !ok {
			httpapi.WriteError(c, apperr.Unauthenticated(msgBadFormat))
			return
		}

		id, err := v.VerifyToken(c.Request.Context(), token)
		if err != nil {
			httpapi.WriteError(c, err)
			return
		}

		auth.SetIdentity(c, id)
		c.Next()
	}
}

// extractToken splits "Bearer <token>". The scheme must match exactly.
func extractToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
