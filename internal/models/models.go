package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role"          json:"role"`
	IsActive     bool               `bson:"is_active"     json:"is_active"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"id"`
	Name        string             `bson:"name"                  json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price"                 json:"price"`
	Unit        string             `bson:"unit,omitempty"        json:"unit,omitempty"`
	Image       string             `bson:"image,omitempty"       json:"image,omitempty"`
	InStock     bool               `bson:"in_stock"              json:"in_stock"`
}

// Session maps an opaque bearer token to a user. UserID is the hex form of
// the user's ObjectID, matching how records are stored. No expiry field:
// sessions live until the collection is wiped.
type Session struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"user_id"       json:"user_id"`
	Token  string             `bson:"token"         json:"token"`
}
