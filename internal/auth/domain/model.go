package domain

import "time"

// User is an account that owns projects. Email is unique and compared exactly.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     *string   `json:"fullName" db:"full_name"`
	SchoolName   *string   `json:"schoolName" db:"school_name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the user as returned to clients.
type PublicUser struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   *string `json:"fullName"`
	SchoolName *string `json:"schoolName"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		SchoolName: u.SchoolName,
	}
}

// SignupInput represents data needed to register a new user
type SignupInput struct {
	Email      string
	Password   string
	FullName   *string
	SchoolName *string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by both signup and login.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Identity is the caller resolved from a verified bearer token.
type Identity struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
