package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/schoolforge/sitebuilder-backend/internal/configurations/domain"
)

// ConfigurationRepository stores one builder document per project.
type ConfigurationRepository struct {
	db *sql.DB
}

func NewConfigurationRepository(db *sql.DB) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

func (r *ConfigurationRepository) GetByProject(ctx context.Context, projectID string) (*domain.Configuration, error) {
	const q = `
SELECT id, project_id, config_json, created_at, updated_at
FROM configurations
WHERE project_id = $1;
`
	var (
		c       domain.Configuration
		raw     []byte
		created time.Time
		updated time.Time
	)
	err := r.db.QueryRowContext(ctx, q, projectID).Scan(&c.ID, &c.ProjectID, &raw, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.ConfigJSON = json.RawMessage(raw)
	c.CreatedAt, c.UpdatedAt = &created, &updated
	return &c, nil
}

// Upsert replaces the project's document, creating it on first save. A
// concurrent save of the same project resolves to whichever commits last.
func (r *ConfigurationRepository) Upsert(ctx context.Context, projectID string, doc json.RawMessage) (*domain.Configuration, error) {
	const q = `
INSERT INTO configurations (id, project_id, config_json)
VALUES ($1, $2, $3::jsonb)
ON CONFLICT (project_id) DO UPDATE
SET config_json = EXCLUDED.config_json,
    updated_at  = NOW()
RETURNING id, created_at, updated_at;
`
	c := domain.Configuration{ProjectID: projectID, ConfigJSON: doc}
	var created, updated time.Time
	if err := r.db.QueryRowContext(ctx, q, uuid.NewString(), projectID, string(doc)).
		Scan(&c.ID, &created, &updated); err != nil {
		return nil, err
	}

	c.CreatedAt, c.UpdatedAt = &created, &updated
	return &c, nil
}
