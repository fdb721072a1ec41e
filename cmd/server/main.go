package main

import (
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/config"
	"github.com/IoneseiGabriel/DavaQuiz/internal/database"
	"github.com/IoneseiGabriel/DavaQuiz/internal/handlers"
	"github.com/IoneseiGabriel/DavaQuiz/internal/middleware"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ratelimit"
	"github.com/IoneseiGabriel/DavaQuiz/internal/services"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ws"

	_ "github.com/IoneseiGabriel/DavaQuiz/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           DavaQuiz API
// @version         1.0
// @description     Quiz-hosting backend: hosts create games, players join published games
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)

	hub := ws.NewHub(log)

	limiter := ratelimit.New(
		cfg.RateLimitMaxAttempts,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		time.Duration(cfg.RateLimitBlockSeconds)*time.Second,
		log,
	)

	authService := services.NewAuthService(db, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, limiter)
	gameService := services.NewGameService(db, hub)
	playerService := services.NewPlayerService(db, hub)
	fileService := services.NewFileService(db, cfg.BaseURL)

	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService)
	questionHandler := handlers.NewQuestionHandler(gameService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	fileHandler := handlers.NewFileHandler(fileService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/games/:id", wsHandler.HandleGameLobby)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		games := api.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.POST("", middleware.JWTAuth(authService), gameHandler.CreateGame)
			games.PATCH("/:id", middleware.JWTAuth(authService), gameHandler.UpdateGameMetadata)
			games.POST("/:id/questions", middleware.JWTAuth(authService), questionHandler.CreateQuestion)
		}

		api.POST("/players", playerHandler.CreatePlayer)

		api.POST("/upload", middleware.JWTAuth(authService), fileHandler.Upload)
		api.GET("/images/:fileName", fileHandler.GetByName)
		api.GET("/files", fileHandler.List)
	}

	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
