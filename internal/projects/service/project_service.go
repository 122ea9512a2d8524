package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
	"github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
	"github.com/schoolforge/sitebuilder-backend/internal/validation"
)

const msgProjectNotFound = "project not found"

// Store is the persistence the project registry needs.
type Store interface {
	Create(ctx context.Context, p *domain.Project) error
	ListByOwner(ctx context.Context, userID string) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store Store
}

// NewProjectService creates a new project service
func NewProjectService(store Store) *ProjectService {
	return &ProjectService{store: store}
}

// Create registers a project owned by userID.
func (s *ProjectService) Create(ctx context.Context, userID string, in domain.CreateInput) (*domain.Project, error) {
	if fields := ValidateCreate(in); len(fields) > 0 {
		return nil, apperr.Validation("invalid request body", fields...)
	}

	p := &domain.Project{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProjectName: strings.TrimSpace(in.ProjectName),
		SchoolType:  optional(in.SchoolType),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, apperr.Internal(fmt.Errorf("create project: %w", err))
	}
	return p, nil
}

// List returns all projects for a user, newest first
func (s *ProjectService) List(ctx context.Context, userID string) ([]domain.Project, error) {
	items, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list projects: %w", err))
	}
	if items == nil {
		items = []domain.Project{}
	}
	return items, nil
}

// Get looks a project up by id regardless of owner. Ids that are not in the
// canonical 36 character UUID form cannot exist and are reported as not found.
func (s *ProjectService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	if !isCanonicalUUID(projectID) {
		return nil, apperr.NotFound(msgProjectNotFound)
	}

	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound(msgProjectNotFound).WithCause(err)
		}
		return nil, apperr.Internal(fmt.Errorf("get project: %w", err))
	}
	return p, nil
}

// ValidateCreate checks the trimmed name and school type lengths.
func ValidateCreate(in domain.CreateInput) []apperr.FieldError {
	var out []apperr.FieldError
	if fe := validation.Length("projectName", in.ProjectName, domain.ProjectNameMinLen, domain.ProjectNameMaxLen); fe != nil {
		out = append(out, *fe)
	}
	if in.SchoolType != nil {
		if fe := validation.Length("schoolType", *in.SchoolType, 0, domain.SchoolTypeMaxLen); fe != nil {
			out = append(out, *fe)
		}
	}
	return out
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// isCanonicalUUID rejects the urn, braced and unhyphenated forms that
// uuid.Parse accepts. Postgres refuses some of them as uuid input.
func isCanonicalUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
