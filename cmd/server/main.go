package main

import (
	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kyamashita/study-tracker-api/internal/config"
	"github.com/kyamashita/study-tracker-api/internal/constants"
	"github.com/kyamashita/study-tracker-api/internal/database"
	"github.com/kyamashita/study-tracker-api/internal/handlers"
	"github.com/kyamashita/study-tracker-api/internal/middleware"
	"github.com/kyamashita/study-tracker-api/internal/reports"
	"github.com/kyamashita/study-tracker-api/internal/repository"
	"github.com/kyamashita/study-tracker-api/internal/services"
	"github.com/kyamashita/study-tracker-api/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Open the in-memory store
	if err := database.Connect(cfg); err != nil {
		log.Fatal("Failed to open database", "err", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", "err", err)
	}

	db := database.GetDB()

	// Wire repositories, services and handlers
	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	engine := reports.NewEngine()
	tokens := token.NewManager(cfg.JWTSecret, constants.TokenTTL)

	authService := services.NewAuthService(userRepo)
	subjectService := services.NewSubjectService(subjectRepo)
	sessionService := services.NewSessionService(sessionRepo, subjectRepo, engine)
	statsService := services.NewStatsService(sessionRepo, subjectRepo, engine)

	authHandler := handlers.NewAuthHandler(authService, tokens)
	subjectHandler := handlers.NewSubjectHandler(subjectService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"ok":      true,
			"service": "Study Time Tracker API",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		// Subject routes (protected)
		subjects := api.Group("/subjects")
		subjects.Use(middleware.RequireAuth(tokens))
		{
			subjects.POST("", subjectHandler.CreateSubject)
			subjects.GET("", subjectHandler.ListSubjects)
			subjects.DELETE("/:id", subjectHandler.DeleteSubject)
		}

		// Session routes (protected)
		sessions := api.Group("/sessions")
		sessions.Use(middleware.RequireAuth(tokens))
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("", sessionHandler.ListSessions)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
		}

		// Stats routes (protected)
		stats := api.Group("/stats")
		stats.Use(middleware.RequireAuth(tokens))
		{
			stats.GET("/summary", statsHandler.Summary)
			stats.GET("/time-per-subject", statsHandler.TimePerSubject)
			stats.GET("/study-trend", statsHandler.StudyTrend)
		}
	}

	// Start server
	log.Info("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", "err", err)
	}
}
