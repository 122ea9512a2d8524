package http

import "github.com/gin-gonic/gin"

// Register attaches configuration routes under a project group
// (/projects/:id). The group must already run the bearer auth middleware.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/configuration", h.get)
	rg.PUT("/configuration", h.upsert)
	rg.GET("/configuration/preview/mock-data", h.previewData)
}
