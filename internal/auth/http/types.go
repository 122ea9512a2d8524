package http

import (
	"context"

	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
)

// Service is the credential store and token issuer as seen by the HTTP layer.
type Service interface {
	Register(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error)
	Authenticate(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error)
	Logout(ctx context.Context, id *domain.Identity) error
}

type Handler struct {
	authService Service
}

func New(authService Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

type signupReq struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	FullName   *string `json:"fullName"`
	SchoolName *string `json:"schoolName"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
