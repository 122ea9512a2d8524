package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
)

const DefaultPasswordCost = 12

const (
	msgEmailTaken         = "email is already registered"
	msgInvalidCredentials = "invalid email or password"
	msgInvalidToken       = "invalid or expired token"
)

// UserStore is the persistence the credential store needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type TokenIssuer interface {
	Issue(userID, email string) (string, error)
	Verify(raw string) (*domain.Identity, error)
}

type Revocation interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthService struct {
	users        UserStore
	tokens       TokenIssuer
	revocation   Revocation
	passwordCost int
	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

type Option func(*AuthService)

func WithPasswordCost(cost int) Option {
	return func(s *AuthService) { s.passwordCost = cost }
}

func NewAuthService(users UserStore, tokens TokenIssuer, revocation Revocation, opts ...Option) (*AuthService, error) {
	s := &AuthService{
		users:        users,
		tokens:       tokens,
		revocation:   revocation,
		passwordCost: DefaultPasswordCost,
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("init password hasher: %w", err)
	}
	s.dummyHash = dummy

	return s, nil
}

// Register creates an account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.Conflict(msgEmailTaken)
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, apperr.Internal(fmt.Errorf("lookup user: %w", err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation("invalid request body", apperr.FieldError{
				Field:   "password",
				Rule:    "max",
				Message: "must be at most 72 bytes",
			})
		}
		return nil, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		SchoolName:   in.SchoolName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperr.Conflict(msgEmailTaken).WithCause(err)
		}
		return nil, apperr.Internal(fmt.Errorf("create user: %w", err))
	}

	return s.issue(user)
}

// Authenticate never reveals whether the email exists.
func (s *AuthService) Authenticate(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperr.Internal(fmt.Errorf("lookup user: %w", err))
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
		return nil, apperr.Unauthenticated(msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.Unauthenticated(msgInvalidCredentials)
	}

	return s.issue(user)
}

// VerifyToken resolves the caller behind a bearer token. Revocation lookups
// that fail are treated as invalid tokens.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (*domain.Identity, error) {
	id, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, apperr.Unauthenticated(msgInvalidToken).WithCause(err)
	}

	revoked, err := s.revocation.IsRevoked(ctx, id.TokenID)
	if err != nil {
		return nil, apperr.Unauthenticated(msgInvalidToken).WithCause(err)
	}
	if revoked {
		return nil, apperr.Unauthenticated(msgInvalidToken).WithCause(domain.ErrTokenRevoked)
	}

	return id, nil
}

// Logout revokes the caller's current token.
func (s *AuthService) Logout(ctx context.Context, id *domain.Identity) error {
	if err := s.revocation.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *AuthService) issue(user *domain.User) (*domain.AuthResult, error) {
	tok, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &domain.AuthResult{Token: tok, User: user.Public()}, nil
}
