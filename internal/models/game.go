package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game represents a game listing in the catalog.
// Slug is the human-readable unique key used by all mutation routes.
type Game struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title               string             `bson:"title" json:"title"`
	Slug                string             `bson:"slug" json:"slug"`
	Image               string             `bson:"image" json:"image"`
	Video               string             `bson:"video" json:"video"`
	Description         string             `bson:"description" json:"description"`
	DetailedDescription string             `bson:"detailedDescription" json:"detailedDescription"`
	Developer           string             `bson:"developer" json:"developer"`
	Price               float64            `bson:"price" json:"price"`
	Genre               []string           `bson:"genre" json:"genre"`
	Rating              float64            `bson:"rating" json:"rating"`
	ReleaseDate         *time.Time         `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
	Players             string             `bson:"players" json:"players"`
	Platforms           []string           `bson:"platforms" json:"platforms"`
	StoreLinks          map[string]string  `bson:"storeLinks" json:"storeLinks"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
