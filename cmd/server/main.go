package main

import (
	"log"
	"os"

	"github.com/befit/api/internal/cache"
	"github.com/befit/api/internal/config"
	"github.com/befit/api/internal/database"
	"github.com/befit/api/internal/handler"
	"github.com/befit/api/internal/localtime"
	"github.com/befit/api/internal/middleware"
	"github.com/befit/api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed the exercise catalogue before accepting traffic
	seeded, err := database.SeedExerciseTypes(db)
	if err != nil {
		log.Fatalf("Failed to seed exercise types: %v", err)
	}
	if seeded > 0 {
		log.Printf("Seeded %d exercise types", seeded)
	}

	// Display timezone for form input and output
	loc, err := localtime.Location(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}

	// Initialize Redis cache
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		// Continue without Redis cache (fail-open)
		redisCache = nil
	}

	// Stores
	sessionStore := store.NewSessionStore(db)
	executionStore := store.NewExecutionStore(db)
	exerciseTypeStore := store.NewExerciseTypeStore(db)

	// Handlers
	googleConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
	authHandler := handler.NewAuthHandler(db, cfg.JWTSecret, googleConfig, cfg.FrontendURL)
	sessionHandler := handler.NewSessionHandler(sessionStore, loc)
	executionHandler := handler.NewExecutionHandler(executionStore, exerciseTypeStore, loc)
	exerciseTypeHandler := handler.NewExerciseTypeHandler(exerciseTypeStore, redisCache)
	statisticsHandler := handler.NewStatisticsHandler(executionStore)

	// Setup router
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	r.GET("/auth/google", authHandler.GoogleAuth)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)
	r.POST("/auth/refresh", authHandler.RefreshToken)
	r.POST("/auth/logout", authHandler.Logout)

	// API routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/me", authHandler.Me)

		// Training sessions
		api.GET("/sessions", sessionHandler.List)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.POST("/sessions", sessionHandler.Create)
		api.PUT("/sessions/:id", sessionHandler.Update)
		api.DELETE("/sessions/:id", sessionHandler.Delete)

		// Exercise executions
		api.GET("/executions", executionHandler.List)
		api.GET("/executions/:id", executionHandler.Get)
		api.POST("/executions", executionHandler.Create)
		api.PUT("/executions/:id", executionHandler.Update)
		api.DELETE("/executions/:id", executionHandler.Delete)

		// Reference data and statistics
		api.GET("/exercise-types", exerciseTypeHandler.List)
		api.GET("/statistics", statisticsHandler.Get)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("API server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
