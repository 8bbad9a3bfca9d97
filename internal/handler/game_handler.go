package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"sensen/backend/internal/database"
	"sensen/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// region --- DTOs ---

// GameInput defines the payload accepted when creating or updating a game.
type GameInput struct {
	Title               string            `json:"title" binding:"required"`
	Slug                string            `json:"slug"`
	Image               string            `json:"image"`
	Video               string            `json:"video"`
	Description         string            `json:"description" binding:"required"`
	DetailedDescription string            `json:"detailedDescription"`
	Developer           string            `json:"developer"`
	Price               float64           `json:"price" binding:"gte=0"`
	Genre               []string          `json:"genre"`
	Rating              float64           `json:"rating"`
	ReleaseDate         *time.Time        `json:"releaseDate"`
	Players             string            `json:"players"`
	Platforms           []string          `json:"platforms"`
	StoreLinks          map[string]string `json:"storeLinks"`
}

// endregion

// region --- Public Handlers ---

// GetAllGames godoc
// @Summary      List all games
// @Tags         games
// @Produce      json
// @Success      200  {array}   models.Game
// @Failure      500  {object}  MessageResponse
// @Router       /games [get]
func GetAllGames(c *gin.Context) {
	ctx := context.Background()

	cursor, err := database.DB.Collection("games").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching games", "error": err.Error()})
		return
	}

	games := []models.Game{}
	if err := cursor.All(ctx, &games); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching games", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGameBySlug godoc
// @Summary      Get a single game by slug
// @Tags         games
// @Produce      json
// @Param        slug path string true "Game slug"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  MessageResponse "Game not found"
// @Router       /games/{slug} [get]
func GetGameBySlug(c *gin.Context) {
	var game models.Game
	err := database.DB.Collection("games").
		FindOne(context.Background(), bson.M{"slug": c.Param("slug")}).
		Decode(&game)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching game", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  MessageResponse
// @Failure      409  {object}  MessageResponse "Duplicate slug"
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Slug is required"})
		return
	}

	now := time.Now().UTC()
	game := models.Game{
		Title:               strings.TrimSpace(input.Title),
		Slug:                slug,
		Image:               input.Image,
		Video:               input.Video,
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
		Developer:           input.Developer,
		Price:               input.Price,
		Genre:               input.Genre,
		Rating:              input.Rating,
		ReleaseDate:         input.ReleaseDate,
		Players:             input.Players,
		Platforms:           input.Platforms,
		StoreLinks:          input.StoreLinks,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if game.StoreLinks == nil {
		game.StoreLinks = map[string]string{}
	}

	ctx := context.Background()
	result, err := database.DB.Collection("games").InsertOne(ctx, game)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "A game with this slug already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating game", "error": err.Error()})
		return
	}

	game.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces a game's fields, keyed by slug. The slug itself is immutable.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string    true "Game slug"
// @Param        input body      GameInput true "New Game Info"
// @Success      200   {object}  models.Game
// @Failure      400   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse "Game not found"
// @Router       /games/{slug} [put]
func UpdateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// The route parameter is the key; any slug in the payload is ignored so
	// the document cannot be re-keyed.
	update := bson.M{
		"title":               strings.TrimSpace(input.Title),
		"image":               input.Image,
		"video":               input.Video,
		"description":         input.Description,
		"detailedDescription": input.DetailedDescription,
		"developer":           input.Developer,
		"price":               input.Price,
		"genre":               input.Genre,
		"rating":              input.Rating,
		"players":             input.Players,
		"platforms":           input.Platforms,
		"storeLinks":          input.StoreLinks,
		"updatedAt":           time.Now().UTC(),
	}
	if input.ReleaseDate != nil {
		update["releaseDate"] = *input.ReleaseDate
	}

	var updated models.Game
	err := database.DB.Collection("games").
		FindOneAndUpdate(context.Background(),
			bson.M{"slug": c.Param("slug")},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating game", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Game slug"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} MessageResponse "Game not found"
// @Router       /games/{slug} [delete]
func DeleteGame(c *gin.Context) {
	result, err := database.DB.Collection("games").
		DeleteOne(context.Background(), bson.M{"slug": c.Param("slug")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting game", "error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

// endregion
