package domain

import "time"

const (
	ProjectNameMinLen = 3
	ProjectNameMaxLen = 100
	SchoolTypeMaxLen  = 50
)

// Project represents a school website owned by exactly one user for its
// whole lifetime. It is storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ProjectName string    `json:"projectName"`
	SchoolType  *string   `json:"schoolType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateInput struct {
	ProjectName string
	SchoolType  *string
}
