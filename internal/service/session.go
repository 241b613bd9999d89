package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/repo"
)

const tokenBytes = 24

type SessionService struct {
	Store Store
}

// CreateSession persists a fresh opaque token for the user and returns it.
// Multiple live sessions per user are allowed; nothing expires them.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	sess := models.Session{UserID: userID, Token: token}
	if err := s.Store.InsertSession(ctx, &sess); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveToken maps a bearer token back to its user. An unknown token, or a
// session whose user no longer exists, is ErrUnauthenticated.
func (s *SessionService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	sess, err := s.Store.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	user, err := s.Store.FindUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
