package memory

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schoolforge/sitebuilder-backend/internal/components/domain"
)

type Components struct {
	mu    sync.RWMutex
	byKey map[string]domain.Descriptor
}

func NewComponents() *Components {
	return &Components{byKey: make(map[string]domain.Descriptor)}
}

func (s *Components) ListAll(_ context.Context) ([]domain.Descriptor, error) {
	return s.filter(func(domain.Descriptor) bool { return true }), nil
}

func (s *Components) ListByType(_ context.Context, componentType string) ([]domain.Descriptor, error) {
	return s.filter(func(d domain.Descriptor) bool { return d.ComponentType == componentType }), nil
}

// UpsertByKey keeps the id and creation time of an existing entry.
func (s *Components) UpsertByKey(_ context.Context, d *domain.Descriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.byKey[d.Key]; ok {
		d.ID, d.CreatedAt = existing.ID, existing.CreatedAt
	} else {
		d.ID, d.CreatedAt = uuid.NewString(), now
	}
	d.UpdatedAt = now

	stored := *d
	stored.PropsSchema = maps.Clone(d.PropsSchema)
	s.byKey[d.Key] = stored
	return nil
}

func (s *Components) filter(keep func(domain.Descriptor) bool) []domain.Descriptor {
	s.mu.RLock()
	out := make([]domain.Descriptor, 0, len(s.byKey))
	for _, d := range s.byKey {
		if keep(d) {
			d.PropsSchema = maps.Clone(d.PropsSchema)
			out = append(out, d)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ComponentType != out[j].ComponentType {
			return out[i].ComponentType < out[j].ComponentType
		}
		return out[i].ComponentName < out[j].ComponentName
	})
	return out
}
