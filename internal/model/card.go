// File: internal/model/card.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like references a user who liked a card. At most one per user per card.
type Like struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
}

type Card struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	BizNumber   int                `bson:"bizNumber" json:"bizNumber"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Address     string             `bson:"address" json:"address"`
	Phone       string             `bson:"phone" json:"phone"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Likes       []Like             `bson:"likes" json:"likes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
