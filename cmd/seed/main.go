// Command seed wipes the games collection and reseeds it with the
// storefront's launch catalog.
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

func seedGames() []models.Game {
	now := time.Now().UTC()
	games := []models.Game{
		{
			Title:       "Typomancer",
			Slug:        "typomancer",
			Image:       "/images/game1_cover.jpg",
			Description: "An action-packed adventure in a dystopian future.",
			Platforms:   []string{"PC"},
			StoreLinks:  map[string]string{"steam": "#"},
		},
		{
			Title:       "Tyfortress",
			Slug:        "tyfortress",
			Image:       "/images/game2_cover.jpg",
			Video:       "/videos/game2_preview.mp4",
			Description: "Explore an enchanted forest and uncover its secrets.",
			Platforms:   []string{"PC"},
			StoreLinks:  map[string]string{"steam": "#"},
		},
		{
			Title:       "Tybot Invasion",
			Slug:        "tybot-invasion",
			Image:       "/images/game3_cover.jpg",
			Video:       "/videos/game3_preview.mp4",
			Description: "Race against the best pilots in the galaxy.",
			Platforms:   []string{"PC"},
			StoreLinks:  map[string]string{"steam": "#"},
		},
		{
			Title:       "Smashing Spirits",
			Slug:        "smashing-spirits",
			Image:       "/images/game4_cover.jpg",
			Video:       "/videos/game4_preview.mp4",
			Description: "Defend your city from hordes of zombies.",
			Platforms:   []string{"PC"},
			StoreLinks:  map[string]string{"steam": "#"},
		},
		{
			Title:       "Neon Ships",
			Slug:        "neon-ships",
			Image:       "/images/game5_cover.jpg",
			Description: "Discover the mysteries of the deep ocean.",
			Platforms:   []string{"PC"},
			StoreLinks:  map[string]string{"steam": "#"},
		},
	}
	for i := range games {
		games[i].Genre = []string{}
		games[i].CreatedAt = now
		games[i].UpdatedAt = now
	}
	return games
}

func main() {
	config.LoadConfig()
	database.Connect(config.AppConfig.MongoURI, config.AppConfig.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.Disconnect(ctx)

	games := database.DB.Collection("games")

	if _, err := games.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Error clearing games collection: %v", err)
	}

	docs := make([]interface{}, 0)
	for _, game := range seedGames() {
		docs = append(docs, game)
	}

	result, err := games.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Error seeding games: %v", err)
	}

	log.Printf("Seeded %d games.", len(result.InsertedIDs))
}
