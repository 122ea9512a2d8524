package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
	"github.com/schoolforge/sitebuilder-backend/internal/configurations/domain"
	projectdomain "github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
	"github.com/schoolforge/sitebuilder-backend/internal/validation"
)

const msgForbidden = "you cannot access this project"

// Store is the persistence the configuration store needs.
type Store interface {
	GetByProject(ctx context.Context, projectID string) (*domain.Configuration, error)
	Upsert(ctx context.Context, projectID string, doc json.RawMessage) (*domain.Configuration, error)
}

// Projects resolves projects for the ownership check. Its errors are
// already classified.
type Projects interface {
	Get(ctx context.Context, projectID string) (*projectdomain.Project, error)
}

// ConfigurationService reads and writes builder documents. Every operation
// checks that the caller owns the project first.
type ConfigurationService struct {
	store    Store
	projects Projects
}

func NewConfigurationService(store Store, projects Projects) *ConfigurationService {
	return &ConfigurationService{store: store, projects: projects}
}

// AssertOwnership fails with not found when the project is absent and with
// forbidden when another user owns it.
func (s *ConfigurationService) AssertOwnership(ctx context.Context, projectID, userID string) (*projectdomain.Project, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, apperr.Forbidden(msgForbidden)
	}
	return p, nil
}

// Get returns the saved document, or the default one when nothing was saved.
// The default is not persisted.
func (s *ConfigurationService) Get(ctx context.Context, projectID, userID string) (*domain.Configuration, error) {
	if _, err := s.AssertOwnership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	c, err := s.store.GetByProject(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Default(projectID), nil
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("get configuration: %w", err))
	}
	return c, nil
}

// Upsert overwrites the whole document. Last write wins.
func (s *ConfigurationService) Upsert(ctx context.Context, projectID, userID string, doc json.RawMessage) (*domain.Configuration, error) {
	if _, err := s.AssertOwnership(ctx, projectID, userID); err != nil {
		return nil, err
	}
	if fe := validation.JSONObject("configJson", doc); fe != nil {
		return nil, apperr.Validation("invalid request body", *fe)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, doc); err != nil {
		return nil, apperr.Validation("invalid request body").WithCause(err)
	}

	c, err := s.store.Upsert(ctx, projectID, compact.Bytes())
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upsert configuration: %w", err))
	}
	return c, nil
}

// PreviewData returns the fixed sample dataset. It does not read the
// saved document.
func (s *ConfigurationService) PreviewData(ctx context.Context, projectID, userID string) (*domain.PreviewData, error) {
	if _, err := s.AssertOwnership(ctx, projectID, userID); err != nil {
		return nil, err
	}
	data := domain.SamplePreview()
	return &data, nil
}
