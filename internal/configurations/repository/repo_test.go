package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolforge/sitebuilder-backend/internal/configurations/domain"
)

func TestConfigurationRepository_GetByProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConfigurationRepository(db)
	ctx := context.Background()
	cols := []string{"id", "project_id", "config_json", "created_at", "updated_at"}

	t.Run("stored document", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`FROM configurations\s+WHERE project_id = \$1`).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("c-1", "p-1", []byte(`{"pages":[{"id":1}]}`), now, now))

		c, err := repo.GetByProject(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "c-1", c.ID)
		assert.JSONEq(t, `{"pages":[{"id":1}]}`, string(c.ConfigJSON))
		require.NotNil(t, c.UpdatedAt)
	})

	t.Run("nothing saved", func(t *testing.T) {
		mock.ExpectQuery(`FROM configurations`).
			WithArgs("p-2").
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetByProject(ctx, "p-2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigurationRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConfigurationRepository(db)
	now := time.Now()
	doc := json.RawMessage(`{"pages":[],"theme":{"color":"blue"}}`)

	mock.ExpectQuery(`INSERT INTO configurations .* ON CONFLICT \(project_id\) DO UPDATE`).
		WithArgs(sqlmock.AnyArg(), "p-1", string(doc)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("c-1", now, now))

	c, err := repo.Upsert(context.Background(), "p-1", doc)
	require.NoError(t, err)
	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "p-1", c.ProjectID)
	assert.JSONEq(t, string(doc), string(c.ConfigJSON))
	require.NoError(t, mock.ExpectationsWereMet())
}
