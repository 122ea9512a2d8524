package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
	"github.com/schoolforge/sitebuilder-backend/internal/components/domain"
)

// Store is the persistence the component catalog needs.
type Store interface {
	ListAll(ctx context.Context) ([]domain.Descriptor, error)
	ListByType(ctx context.Context, componentType string) ([]domain.Descriptor, error)
	UpsertByKey(ctx context.Context, d *domain.Descriptor) error
}

// ComponentService serves the component catalog and seeds its built-in entries
type ComponentService struct {
	store    Store
	defaults []domain.Descriptor
}

// NewComponentService creates a catalog service seeding the given defaults.
func NewComponentService(store Store, defaults []domain.Descriptor) *ComponentService {
	return &ComponentService{store: store, defaults: defaults}
}

func (s *ComponentService) ListAll(ctx context.Context) ([]domain.Descriptor, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list components: %w", err))
	}
	return nonNil(items), nil
}

// ListByType returns an empty list for unknown types.
func (s *ComponentService) ListByType(ctx context.Context, componentType string) ([]domain.Descriptor, error) {
	items, err := s.store.ListByType(ctx, componentType)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list components by type: %w", err))
	}
	return nonNil(items), nil
}

// SeedDefaults upserts every built-in descriptor by key and returns the full
// catalog. Repeated calls converge to the same state.
func (s *ComponentService) SeedDefaults(ctx context.Context) ([]domain.Descriptor, error) {
	for _, d := range s.defaults {
		d.PropsSchema = maps.Clone(d.PropsSchema)
		if err := s.store.UpsertByKey(ctx, &d); err != nil {
			return nil, apperr.Internal(fmt.Errorf("seed component %q: %w", d.Key, err))
		}
	}
	return s.ListAll(ctx)
}

func nonNil(items []domain.Descriptor) []domain.Descriptor {
	if items == nil {
		return []domain.Descriptor{}
	}
	return items
}
