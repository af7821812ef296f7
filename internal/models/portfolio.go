package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Portfolio is soft-deleted: Delete flips IsActive and every read path
// filters on it, so an inactive document is a permanent tombstone.
type Portfolio struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	UserID      string             `bson:"user_id"`
	Description string             `bson:"description"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}
