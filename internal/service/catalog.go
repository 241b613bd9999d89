package service

import (
	"context"
	"fmt"

	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/transport"
)

type CatalogService struct {
	Store Store
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Store.ListProducts(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	prod := models.Product{
		Name:    req.Name,
		Price:   req.Price,
		InStock: true,
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Unit != nil {
		prod.Unit = *req.Unit
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.InStock != nil {
		prod.InStock = *req.InStock
	}

	if err := s.Store.InsertProduct(ctx, &prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

// UpdateProduct applies a partial update. An update with no fields is
// rejected before touching storage.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req transport.UpdateProductRequest) (*models.Product, error) {
	if req.Empty() {
		return nil, ErrEmptyUpdate
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return s.Store.UpdateProduct(ctx, id, req)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.Store.DeleteProduct(ctx, id)
}
