package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/schoolforge/sitebuilder-backend/internal/components/domain"
)

// ComponentRepository provides persistence operations for the component catalog
type ComponentRepository struct {
	db *sql.DB
}

func NewComponentRepository(db *sql.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

const selectComponents = `
SELECT id, key, component_name, component_type, description, props_schema, created_at, updated_at
FROM builder_components
`

// ListAll returns the catalog ordered by type, then name.
func (r *ComponentRepository) ListAll(ctx context.Context) ([]domain.Descriptor, error) {
	return r.query(ctx, selectComponents+`ORDER BY component_type ASC, component_name ASC;`)
}

// ListByType returns the components of one type ordered by name.
func (r *ComponentRepository) ListByType(ctx context.Context, componentType string) ([]domain.Descriptor, error) {
	return r.query(ctx, selectComponents+`WHERE component_type = $1
ORDER BY component_name ASC;`, componentType)
}

// UpsertByKey inserts the descriptor or overwrites the row with the same key.
// The row id is kept across updates.
func (r *ComponentRepository) UpsertByKey(ctx context.Context, d *domain.Descriptor) error {
	const q = `
INSERT INTO builder_components (id, key, component_name, component_type, description, props_schema)
VALUES ($1, $2, $3, $4, $5, $6::jsonb)
ON CONFLICT (key) DO UPDATE
SET component_name = EXCLUDED.component_name,
    component_type = EXCLUDED.component_type,
    description    = EXCLUDED.description,
    props_schema   = EXCLUDED.props_schema,
    updated_at     = NOW()
RETURNING id, created_at, updated_at;
`
	props, err := json.Marshal(d.PropsSchema)
	if err != nil {
		return fmt.Errorf("marshal props schema: %w", err)
	}

	return r.db.QueryRowContext(ctx, q,
		uuid.NewString(), d.Key, d.ComponentName, d.ComponentType, d.Description, string(props),
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *ComponentRepository) query(ctx context.Context, q string, args ...any) ([]domain.Descriptor, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Descriptor, 0, 8)
	for rows.Next() {
		var (
			d     domain.Descriptor
			props []byte
		)
		if err := rows.Scan(&d.ID, &d.Key, &d.ComponentName, &d.ComponentType, &d.Description, &props, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		d.PropsSchema = map[string]string{}
		if len(props) > 0 {
			if err := json.Unmarshal(props, &d.PropsSchema); err != nil {
				return nil, fmt.Errorf("decode props schema for %q: %w", d.Key, err)
			}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
