package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/schoolforge/sitebuilder-backend/internal/api/http"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listByType(c *gin.Context) {
	items, err := h.svc.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) seed(c *gin.Context) {
	items, err := h.svc.SeedDefaults(c.Request.Context())
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, items)
}
