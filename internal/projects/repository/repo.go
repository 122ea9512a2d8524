package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/schoolforge/sitebuilder-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project whose ID and owner are already set.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (id, user_id, project_name, school_type)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at;
`
	var schoolType sql.NullString
	if p.SchoolType != nil {
		schoolType = sql.NullString{String: *p.SchoolType, Valid: true}
	}

	return r.db.QueryRowContext(ctx, q, p.ID, p.UserID, p.ProjectName, schoolType).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

// ListByOwner returns the user's projects, newest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Project, error) {
	const q = `
SELECT id, user_id, project_name, school_type, created_at, updated_at
FROM projects
WHERE user_id = $1
ORDER BY created_at DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
SELECT id, user_id, project_name, school_type, created_at, updated_at
FROM projects
WHERE id = $1;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var schoolType sql.NullString
	if err := row.Scan(&p.ID, &p.UserID, &p.ProjectName, &schoolType, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if schoolType.Valid {
		p.SchoolType = &schoolType.String
	}
	return &p, nil
}
