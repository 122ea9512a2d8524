package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
)

type projectRow struct {
	p   domain.Project
	seq uint64
}

type Projects struct {
	mu   sync.RWMutex
	byID map[string]projectRow
	seq  uint64
}

func NewProjects() *Projects {
	return &Projects{byID: make(map[string]projectRow)}
}

func (s *Projects) Create(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	s.seq++
	s.byID[p.ID] = projectRow{p: *p, seq: s.seq}
	return nil
}

// ListByOwner returns newest first. Projects created within the same clock
// tick keep reverse insertion order.
func (s *Projects) ListByOwner(_ context.Context, userID string) ([]domain.Project, error) {
	s.mu.RLock()
	rows := make([]projectRow, 0)
	for _, r := range s.byID {
		if r.p.UserID == userID {
			rows = append(rows, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].p.CreatedAt.Equal(rows[j].p.CreatedAt) {
			return rows[i].p.CreatedAt.After(rows[j].p.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})

	out := make([]domain.Project, len(rows))
	for i, r := range rows {
		out[i] = r.p
	}
	return out, nil
}

func (s *Projects) GetByID(_ context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.p
	return &p, nil
}
