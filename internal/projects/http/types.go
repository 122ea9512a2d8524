package http

import (
	"context"

	"github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
)

// Service is the project registry as seen by the HTTP layer.
type Service interface {
	Create(ctx context.Context, userID string, in domain.CreateInput) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]domain.Project, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	ProjectName string  `json:"projectName" binding:"required"`
	SchoolType  *string `json:"schoolType"`
}
