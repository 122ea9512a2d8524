package http

import (
	"context"
	"encoding/json"

	"github.com/schoolforge/sitebuilder-backend/internal/configurations/domain"
)

// Service is the configuration store as seen by the HTTP layer.
type Service interface {
	Get(ctx context.Context, projectID, userID string) (*domain.Configuration, error)
	Upsert(ctx context.Context, projectID, userID string, doc json.RawMessage) (*domain.Configuration, error)
	PreviewData(ctx context.Context, projectID, userID string) (*domain.PreviewData, error)
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

type upsertReq struct {
	ConfigJSON json.RawMessage `json:"configJson" binding:"required"`
}
