package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
	componentdomain "github.com/schoolforge/sitebuilder-backend/internal/components/domain"
	configdomain "github.com/schoolforge/sitebuilder-backend/internal/configurations/domain"
	projectdomain "github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
)

func TestUsers(t *testing.T) {
	s := NewUsers()
	ctx := context.Background()

	_, err := s.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)

	require.NoError(t, s.Create(ctx, &authdomain.User{ID: "u-1", Email: "a@x.com", PasswordHash: "h"}))
	assert.ErrorIs(t, s.Create(ctx, &authdomain.User{ID: "u-2", Email: "a@x.com"}), authdomain.ErrEmailTaken)

	// emails are compared exactly
	require.NoError(t, s.Create(ctx, &authdomain.User{ID: "u-3", Email: "A@x.com"}))

	u, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestProjects(t *testing.T) {
	s := NewProjects()
	ctx := context.Background()

	for _, id := range []string{"p-1", "p-2", "p-3"} {
		require.NoError(t, s.Create(ctx, &projectdomain.Project{ID: id, UserID: "u-1", ProjectName: id}))
	}
	require.NoError(t, s.Create(ctx, &projectdomain.Project{ID: "p-4", UserID: "u-2", ProjectName: "other"}))

	items, err := s.ListByOwner(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "p-3", items[0].ID)
	assert.Equal(t, "p-1", items[2].ID)

	items, err = s.ListByOwner(ctx, "u-9")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	p, err := s.GetByID(ctx, "p-4")
	require.NoError(t, err)
	assert.Equal(t, "u-2", p.UserID)

	_, err = s.GetByID(ctx, "p-404")
	assert.ErrorIs(t, err, projectdomain.ErrNotFound)
}

func TestConfigurations(t *testing.T) {
	s := NewConfigurations()
	ctx := context.Background()

	_, err := s.GetByProject(ctx, "p-1")
	assert.ErrorIs(t, err, configdomain.ErrNotFound)

	first, err := s.Upsert(ctx, "p-1", json.RawMessage(`{"pages":[{"id":1}]}`))
	require.NoError(t, err)

	second, err := s.Upsert(ctx, "p-1", json.RawMessage(`{"pages":[{"id":2}]}`))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, *first.CreatedAt, *second.CreatedAt)

	got, err := s.GetByProject(ctx, "p-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pages":[{"id":2}]}`, string(got.ConfigJSON))

	// returned documents do not alias stored ones
	got.ConfigJSON[0] = '['
	again, err := s.GetByProject(ctx, "p-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pages":[{"id":2}]}`, string(again.ConfigJSON))
}

func TestConfigurations_ConcurrentUpsert(t *testing.T) {
	s := NewConfigurations()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Upsert(ctx, "p-1", json.RawMessage(`{"pages":[]}`))
		}()
	}
	wg.Wait()

	got, err := s.GetByProject(ctx, "p-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pages":[]}`, string(got.ConfigJSON))
	assert.Len(t, s.byProject, 1)
}

func TestComponents(t *testing.T) {
	s := NewComponents()
	ctx := context.Background()

	hero := &componentdomain.Descriptor{Key: "hero-banner", ComponentName: "Hero Banner", ComponentType: "hero", PropsSchema: map[string]string{"title": "string"}}
	header := &componentdomain.Descriptor{Key: "header-basic", ComponentName: "Basic Header", ComponentType: "header"}
	require.NoError(t, s.UpsertByKey(ctx, hero))
	require.NoError(t, s.UpsertByKey(ctx, header))
	id := hero.ID

	update := &componentdomain.Descriptor{Key: "hero-banner", ComponentName: "Hero", ComponentType: "hero"}
	require.NoError(t, s.UpsertByKey(ctx, update))
	assert.Equal(t, id, update.ID)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "header", all[0].ComponentType)
	assert.Equal(t, "Hero", all[1].ComponentName)

	byType, err := s.ListByType(ctx, "footer")
	require.NoError(t, err)
	assert.NotNil(t, byType)
	assert.Empty(t, byType)
}
