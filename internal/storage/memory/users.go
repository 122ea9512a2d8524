// Package memory provides in-process stores for local development and tests.
// Data is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
)

type Users struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewUsers() *Users {
	return &Users{byEmail: make(map[string]domain.User)}
}

func (s *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// Create stores the user. Emails are unique and compared exactly.
func (s *Users) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	s.byEmail[u.Email] = *u
	return nil
}
