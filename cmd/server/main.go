package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"sensen/backend/internal/auth"
	"sensen/backend/internal/config"
	"sensen/backend/internal/database"
	"sensen/backend/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "sensen/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Sensen Games API
// @version         1.0
// @description     REST API for the Sensen Games storefront and admin panel.
// @host            localhost:3001
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	database.Connect(config.AppConfig.MongoURI, config.AppConfig.DatabaseName)

	router := gin.Default()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if config.AppConfig.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.AppConfig.AllowedOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded media is served straight from the uploads directory.
	router.Static("/uploads", config.AppConfig.UploadDir)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Sensen Backend is running!")
	})

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handler.Register)
			authRoutes.POST("/login", handler.Login)
		}

		// Public catalog and settings reads
		api.GET("/games", handler.GetAllGames)
		api.GET("/games/:slug", handler.GetGameBySlug)
		api.GET("/settings", handler.GetSettings)

		// Admin routes (protected)
		protected := api.Group("", auth.AuthMiddleware())
		{
			protected.POST("/games", handler.CreateGame)
			protected.PUT("/games/:slug", handler.UpdateGame)
			protected.DELETE("/games/:slug", handler.DeleteGame)

			protected.PUT("/settings", handler.UpdateSettings)

			protected.POST("/upload/image", handler.UploadImage)
			protected.POST("/upload/video", handler.UploadVideo)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost" + addr + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
