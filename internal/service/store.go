package service

import (
	"context"
	"errors"

	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/repo"
	"github.com/poetracikal/backend/internal/transport"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("missing or invalid token")
	ErrEmptyUpdate        = errors.New("update carries no fields")
	ErrValidation         = errors.New("invalid input")
)

// Store is the storage surface the services need. *repo.Mongo is the
// production implementation; tests swap in an in-memory fake.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error

	InsertSession(ctx context.Context, sess *models.Session) error
	FindSessionByToken(ctx context.Context, token string) (*models.Session, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, prod *models.Product) error
	UpdateProduct(ctx context.Context, id string, req transport.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

var _ Store = (*repo.Mongo)(nil)
