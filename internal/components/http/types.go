package http

import (
	"context"

	"github.com/schoolforge/sitebuilder-backend/internal/components/domain"
)

type Service interface {
	ListAll(ctx context.Context) ([]domain.Descriptor, error)
	ListByType(ctx context.Context, componentType string) ([]domain.Descriptor, error)
	SeedDefaults(ctx context.Context) ([]domain.Descriptor, error)
}

// Handler bundles the dependencies for component catalog endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}
