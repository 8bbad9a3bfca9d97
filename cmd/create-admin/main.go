// Command create-admin recreates the fixed admin account, replacing any
// existing user with the same username.
package main

import (
	"context"
	"log"
	"time"

	"sensen/backend/internal/config"
	"sensen/backend/internal/database"
	"sensen/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	adminUsername = "admin"
	adminPassword = "password123"
)

func main() {
	config.LoadConfig()
	database.Connect(config.AppConfig.MongoURI, config.AppConfig.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer database.Disconnect(ctx)

	users := database.DB.Collection("users")

	// Always delete the existing admin user to ensure a fresh start.
	if _, err := users.DeleteMany(ctx, bson.M{"username": adminUsername}); err != nil {
		log.Fatalf("Error deleting existing admin user: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		Username:  adminUsername,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(adminPassword); err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}

	log.Printf("Admin user %q created successfully with password %q.", adminUsername, adminPassword)
}
