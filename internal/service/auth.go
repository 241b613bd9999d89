package service

import (
	"context"
	"errors"

	"github.com/poetracikal/backend/internal/hash"
	"github.com/poetracikal/backend/internal/logging"
	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/repo"
)

type AuthService struct {
	Store    Store
	Sessions *SessionService
}

type AuthResult struct {
	Token string
	User  *models.User
}

// Register creates a customer account and opens a session for it. The email
// existence check races with concurrent registrations; the unique index on
// user.email closes that race, and its violation maps to the same
// ErrEmailTaken the fast path returns.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if _, err := s.Store.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		l.Error("register_failed", "reason", "email lookup error", "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	if err := s.Store.InsertUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		l.Error("register_failed", "reason", "insert error", "error", err)
		return nil, err
	}

	token, err := s.Sessions.CreateSession(ctx, user.ID.Hex())
	if err != nil {
		l.Error("register_failed", "reason", "session create error", "error", err)
		return nil, err
	}

	return &AuthResult{Token: token, User: &user}, nil
}

// Login verifies credentials and opens a new session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "reason", "email lookup error", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Sessions.CreateSession(ctx, user.ID.Hex())
	if err != nil {
		l.Error("login_failed", "reason", "session create error", "error", err)
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}
