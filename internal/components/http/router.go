package http

import "github.com/gin-gonic/gin"

// Register attaches the public catalog routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/type/:type", h.listByType)
	rg.POST("/seed", h.seed)
}
