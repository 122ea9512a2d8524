package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/schoolforge/sitebuilder-backend/internal/api/http"
	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
	"github.com/schoolforge/sitebuilder-backend/internal/auth"
	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
	"github.com/schoolforge/sitebuilder-backend/internal/validation"
)

// Signup creates an account and returns a token for it.
func (h *Handler) Signup(c *gin.Context) {
	var req signupReq
	if err := validation.BindJSON(c, &req); err != nil {
		httpapi.WriteError(c, err)
		return
	}

	res, err := h.authService.Register(c.Request.Context(), domain.SignupInput{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		SchoolName: req.SchoolName,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// Login exchanges credentials for a token.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := validation.BindJSON(c, &req); err != nil {
		httpapi.WriteError(c, err)
		return
	}

	res, err := h.authService.Authenticate(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Logout revokes the presented token.
func (h *Handler) Logout(c *gin.Context) {
	id, ok := auth.CurrentUser(c)
	if !ok {
		httpapi.WriteError(c, apperr.Unauthenticated("invalid or expired token"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), id); err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the identity resolved from the bearer token.
func (h *Handler) Me(c *gin.Context) {
	id, ok := auth.CurrentUser(c)
	if !ok {
		httpapi.WriteError(c, apperr.Unauthenticated("invalid or expired token"))
		return
	}
	c.JSON(http.StatusOK, id)
}
