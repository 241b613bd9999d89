package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/repo"
	"github.com/poetracikal/backend/internal/transport"
)

// memStore is an in-memory Store used instead of Mongo in tests. It mirrors
// the sentinel behavior of repo.Mongo: unknown and malformed ids are both
// repo.ErrNotFound.
type memStore struct {
	users    []models.User
	sessions []models.Session
	products []models.Product
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID.Hex() == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) InsertUser(_ context.Context, user *models.User) error {
	for i := range m.users {
		if m.users[i].Email == user.Email {
			return repo.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) InsertSession(_ context.Context, sess *models.Session) error {
	sess.ID = primitive.NewObjectID()
	m.sessions = append(m.sessions, *sess)
	return nil
}

func (m *memStore) FindSessionByToken(_ context.Context, token string) (*models.Session, error) {
	for i := range m.sessions {
		if m.sessions[i].Token == token {
			s := m.sessions[i]
			return &s, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) ListProducts(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *memStore) InsertProduct(_ context.Context, prod *models.Product) error {
	prod.ID = primitive.NewObjectID()
	m.products = append(m.products, *prod)
	return nil
}

func (m *memStore) UpdateProduct(_ context.Context, id string, req transport.UpdateProductRequest) (*models.Product, error) {
	for i := range m.products {
		if m.products[i].ID.Hex() != id {
			continue
		}
		p := &m.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
		out := *p
		return &out, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) DeleteProduct(_ context.Context, id string) error {
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

var _ Store = (*memStore)(nil)
