package handler

import (
	"context"
	"net/http"
	"time"

	"sensen/backend/internal/database"
	"sensen/backend/internal/models"
	"sensen/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// region --- DTOs ---

// CredentialsInput defines the structure for registration and login requests.
type CredentialsInput struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthResponse defines the structure returned on a successful login.
type AuthResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// endregion

// region --- Auth Handlers ---

// Register godoc
// @Summary      Register a new admin user
// @Description  Creates a new user account with a hashed password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body CredentialsInput true "Credentials"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  MessageResponse
// @Failure      409  {object}  MessageResponse "Username already taken"
// @Failure      500  {object}  MessageResponse
// @Router       /auth/register [post]
func Register(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor, forneça um nome de usuário e senha."})
		return
	}

	username := models.NormalizeUsername(input.Username)

	ctx := context.Background()
	users := database.DB.Collection("users")

	err := users.FindOne(ctx, bson.M{"username": username}).Err()
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Este nome de usuário já está em uso."})
		return
	}

	now := time.Now().UTC()
	user := models.User{
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor ao registrar usuário.", "error": err.Error()})
		return
	}

	result, err := users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "Este nome de usuário já está em uso."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor ao registrar usuário.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"_id":      result.InsertedID.(primitive.ObjectID).Hex(),
		"username": username,
		"message":  "Usuário registrado com sucesso!",
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates a user and returns a token valid for 24 hours.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body CredentialsInput true "Credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  MessageResponse
// @Failure      401  {object}  MessageResponse "Invalid credentials"
// @Failure      500  {object}  MessageResponse
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor, forneça um nome de usuário e senha."})
		return
	}

	username := models.NormalizeUsername(input.Username)

	var user models.User
	err := database.DB.Collection("users").
		FindOne(context.Background(), bson.M{"username": username}).
		Decode(&user)
	if err != nil || !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Nome de usuário ou senha inválidos."})
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor ao tentar fazer login.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Token:    token,
	})
}

// endregion
