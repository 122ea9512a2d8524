package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
	"github.com/schoolforge/sitebuilder-backend/internal/storage/postgres"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, school_name, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user domain.User
	var fullName, schoolName sql.NullString

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&fullName,
		&schoolName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	// Handle nullable fields
	if fullName.Valid {
		user.FullName = &fullName.String
	}
	if schoolName.Valid {
		user.SchoolName = &schoolName.String
	}

	return &user, nil
}

// Create inserts a new user. A duplicate email yields domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, school_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		nullString(user.FullName),
		nullString(user.SchoolName),
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if postgres.IsUniqueViolation(err, "users_email_key") {
		return domain.ErrEmailTaken
	}
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
