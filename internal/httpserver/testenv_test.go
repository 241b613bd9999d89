package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poetracikal/backend/internal/hash"
	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/repo"
	"github.com/poetracikal/backend/internal/service"
	"github.com/poetracikal/backend/internal/transport"
)

// memStore stands in for Mongo; same sentinel behavior as repo.Mongo.
type memStore struct {
	users    []models.User
	sessions []models.Session
	products []models.Product
}

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

var _ service.Store = (*memStore)(nil)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Store    *memStore
	Sessions *service.SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	store := &memStore{}
	sessions := &service.SessionService{Store: store}
	authSvc := &service.AuthService{Store: store, Sessions: sessions}
	catalogSvc := &service.CatalogService{Store: store}

	e := echo.New()
	Register(e, &Deps{
		Auth:     &AuthHTTP{Svc: authSvc},
		Catalog:  &CatalogHTTP{Svc: catalogSvc},
		System:   &SystemHTTP{DatabaseURLSet: true, DatabaseNameSet: true},
		Sessions: sessions,
	})

	return &testEnv{T: t, E: e, Store: store, Sessions: sessions}
}

func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, body any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	return &buf
}

func register(t *testing.T, env *testEnv, name, email, password string) transport.AuthResponse {
	t.Helper()

	rec := env.do(http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

// seedAdmin writes an admin straight into storage, the only way one can
// exist, then logs in through the API.
func seedAdmin(t *testing.T, env *testEnv) transport.AuthResponse {
	t.Helper()

	pwHash, err := hash.HashPassword("admin-password")
	require.NoError(t, err)

	admin := models.User{
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, env.Store.InsertUser(context.Background(), &admin))

	rec := env.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    "bob@example.com",
		"password": "admin-password",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}
