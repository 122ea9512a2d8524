package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
)

const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxIdentity = "auth_identity"
)

// SetIdentity stores the verified caller on the Gin context.
// This is called by BearerAuthMiddleware
func SetIdentity(c *gin.Context, id *domain.Identity) {
	c.Set(CtxIdentity, id)
	c.Set(CtxUserID, id.UserID)
	c.Set(CtxEmail, id.Email)
}

// CurrentUser returns the caller resolved by the access gate, if any.
func CurrentUser(c *gin.Context) (*domain.Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*domain.Identity)
	return id, ok && id != nil
}

// UserID extracts the caller's user id from the Gin context
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
