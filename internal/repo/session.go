package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/poetracikal/backend/internal/models"
)

func (m *Mongo) InsertSession(ctx context.Context, sess *models.Session) error {
	if _, err := m.DB.Collection(SessionCollection).InsertOne(ctx, sess); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (m *Mongo) FindSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var sess models.Session
	err := m.DB.Collection(SessionCollection).FindOne(ctx, bson.M{"token": token}).Decode(&sess)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &sess, nil
}
