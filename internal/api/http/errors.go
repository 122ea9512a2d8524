package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
)

type ErrorResponse struct {
	OK     bool                `json:"ok"`
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}

// StatusFor maps an error kind to its HTTP status. Duplicate unique fields
// surface as 400.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// WriteError aborts the request with a structured error body.
func WriteError(c *gin.Context, err error) {
	e := apperr.As(err)
	status := StatusFor(e.Kind)

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Msg("request failed")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		OK:     false,
		Error:  e.Message,
		Code:   e.Kind.String(),
		Fields: e.Fields,
	})
}
