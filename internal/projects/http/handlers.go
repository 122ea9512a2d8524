package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/schoolforge/sitebuilder-backend/internal/api/http"
	"github.com/schoolforge/sitebuilder-backend/internal/auth"
	"github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
	"github.com/schoolforge/sitebuilder-backend/internal/validation"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := validation.BindJSON(c, &req); err != nil {
		httpapi.WriteError(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), auth.UserID(c), domain.CreateInput{
		ProjectName: req.ProjectName,
		SchoolType:  req.SchoolType,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
