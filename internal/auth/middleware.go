package auth

import (
	"context"
	"net/http"
	"strings"

	"sensen/backend/internal/database"
	"sensen/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuthMiddleware creates a gin middleware that requires a valid Bearer token.
// It re-checks that the token's user still exists before letting the request
// through, and stores the user ID in the context under "userID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado, nenhum token fornecido."})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado, nenhum token fornecido."})
			return
		}

		userID, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado, o token falhou."})
			return
		}

		objectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado, o token falhou."})
			return
		}

		// The token may outlive the account; make sure the user still exists.
		err = database.DB.Collection("users").
			FindOne(context.Background(), bson.M{"_id": objectID},
				options.FindOne().SetProjection(bson.M{"_id": 1})).
			Err()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado, usuário não encontrado."})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
