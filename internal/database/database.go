package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Connect initializes the MongoDB connection and ensures the unique indexes
// the API relies on for 409 responses (games.slug, users.username).
func Connect(uri, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("MongoDB connected successfully!")

	ensureIndexes(ctx)
}

// Disconnect closes the MongoDB connection.
func Disconnect(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}

func ensureIndexes(ctx context.Context) {
	unique := options.Index().SetUnique(true)

	_, err := DB.Collection("games").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: unique,
	})
	if err != nil {
		log.Fatalf("Failed to create unique index on games.slug: %v", err)
	}

	_, err = DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		log.Fatalf("Failed to create unique index on users.username: %v", err)
	}

	// The settings collection is a by-convention singleton: no unique index
	// exists that would prevent two concurrent first writers from creating
	// two documents.

	log.Println("Database indexes ensured.")
}
