package http

import "github.com/gin-gonic/gin"

// Register attaches the public signup and login routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
}

// RegisterProtected attaches routes that need a verified caller. The group
// must already run the bearer auth middleware.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.Me)
}
