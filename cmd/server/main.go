package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonar43/portfolio-api/internal/cache"
	"github.com/jonar43/portfolio-api/internal/config"
	"github.com/jonar43/portfolio-api/internal/database"
	"github.com/jonar43/portfolio-api/internal/handler"
	"github.com/jonar43/portfolio-api/internal/middleware"
	"github.com/jonar43/portfolio-api/internal/scheduler"
	"github.com/jonar43/portfolio-api/internal/session"
	"github.com/jonar43/portfolio-api/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

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

	// Initialize Redis cache
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		// Continue without Redis cache (fail-open)
		redisCache = nil
	}

	// Initialize asset storage
	var assetStore *storage.AssetStore
	if cfg.S3Bucket != "" {
		assetStore, err = storage.NewAssetStore(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize asset storage: %v", err)
			assetStore = nil
		}
	} else {
		log.Println("Warning: S3_BUCKET not set, uploads disabled")
	}

	// Session service over an explicitly constructed store
	sessions := session.NewService(session.NewGormStore(db))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(sessions, cfg.JWTSecret, cfg.IsProduction())
	projectHandler := handler.NewProjectHandler(db, redisCache)
	aboutHandler := handler.NewAboutHandler(db, redisCache)
	contactHandler := handler.NewContactHandler(db, redisCache)
	settingsHandler := handler.NewSettingsHandler(db, redisCache)
	uploadHandler := handler.NewUploadHandler(assetStore)

	// Optional expired-token sweeper
	var sweeper *scheduler.TokenSweeper
	if cfg.TokenSweepEnabled {
		sweeper = scheduler.NewTokenSweeper(db, cfg.TokenSweepInterval)
		go sweeper.Start(context.Background())
		log.Println("Expired refresh token sweeper started")
	}

	// Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.MetricsMiddleware())

	// CORS middleware: the admin SPA sends credentials, so the origin must
	// be explicit rather than a wildcard
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
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

	// Sweeper status
	r.GET("/sweeper/status", func(c *gin.Context) {
		if sweeper != nil {
			c.JSON(200, sweeper.GetStatus())
		} else {
			c.JSON(200, gin.H{"enabled": false, "message": "Token sweeper is disabled"})
		}
	})

	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret)

	// API routes
	api := r.Group("/api")
	{
		// Auth
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", requireAuth, authHandler.Me)

		// Projects
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.Get)
		api.POST("/projects", requireAuth, projectHandler.Create)
		api.PUT("/projects/:id", requireAuth, projectHandler.Update)
		api.DELETE("/projects/:id", requireAuth, projectHandler.Delete)
		api.PATCH("/projects/reorder", requireAuth, projectHandler.Reorder)

		// About
		api.GET("/about", aboutHandler.Get)
		api.PUT("/about", requireAuth, aboutHandler.Update)

		// Contact
		api.GET("/contact", contactHandler.Get)
		api.PUT("/contact", requireAuth, contactHandler.Update)

		// Site settings
		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", requireAuth, settingsHandler.Update)

		// Uploads
		api.POST("/upload/image", requireAuth, uploadHandler.Image)
		api.POST("/upload/resume", requireAuth, uploadHandler.Resume)
		api.DELETE("/upload/*key", requireAuth, uploadHandler.Delete)
	}

	log.Printf("API server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
