package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/transport"
)

func (m *Mongo) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := m.DB.Collection(ProductCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.Product{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return items, nil
}

func (m *Mongo) InsertProduct(ctx context.Context, prod *models.Product) error {
	res, err := m.DB.Collection(ProductCollection).InsertOne(ctx, prod)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	prod.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateProduct applies the non-nil fields of req and returns the updated
// record. An unknown or malformed id yields ErrNotFound.
func (m *Mongo) UpdateProduct(ctx context.Context, id string, req transport.UpdateProductRequest) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Unit != nil {
		set["unit"] = *req.Unit
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.InStock != nil {
		set["in_stock"] = *req.InStock
	}

	coll := m.DB.Collection(ProductCollection)
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var prod models.Product
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&prod); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reload product: %w", err)
	}
	return &prod, nil
}

func (m *Mongo) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := m.DB.Collection(ProductCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
