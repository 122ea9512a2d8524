package memory

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schoolforge/sitebuilder-backend/internal/configurations/domain"
)

type Configurations struct {
	mu        sync.RWMutex
	byProject map[string]domain.Configuration
}

func NewConfigurations() *Configurations {
	return &Configurations{byProject: make(map[string]domain.Configuration)}
}

func (s *Configurations) GetByProject(_ context.Context, projectID string) (*domain.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byProject[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(c), nil
}

// Upsert overwrites the whole document under the write lock. Last write wins.
func (s *Configurations) Upsert(_ context.Context, projectID string, doc json.RawMessage) (*domain.Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	c, ok := s.byProject[projectID]
	if !ok {
		created := now
		c = domain.Configuration{ID: uuid.NewString(), ProjectID: projectID, CreatedAt: &created}
	}
	updated := now
	c.UpdatedAt = &updated
	c.ConfigJSON = slices.Clone(doc)
	s.byProject[projectID] = c

	return clone(c), nil
}

func clone(c domain.Configuration) *domain.Configuration {
	c.ConfigJSON = slices.Clone(c.ConfigJSON)
	return &c
}
