package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Addon is a catalog entry that order items reference by id when the
// stored selection carries no embedded title.
type Addon struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Price     Money              `bson:"price" json:"price"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
