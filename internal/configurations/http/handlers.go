package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/schoolforge/sitebuilder-backend/internal/api/http"
	"github.com/schoolforge/sitebuilder-backend/internal/auth"
	"github.com/schoolforge/sitebuilder-backend/internal/validation"
)

func (h *Handler) get(c *gin.Context) {
	cfg, err := h.svc.Get(c.Request.Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertReq
	if err := validation.BindJSON(c, &req); err != nil {
		httpapi.WriteError(c, err)
		return
	}

	cfg, err := h.svc.Upsert(c.Request.Context(), c.Param("id"), auth.UserID(c), req.ConfigJSON)
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) previewData(c *gin.Context) {
	data, err := h.svc.PreviewData(c.Request.Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
