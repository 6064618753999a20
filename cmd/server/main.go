package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/l3blonde/grip-and-grin/internal/auth"
	"github.com/l3blonde/grip-and-grin/internal/config"
	"github.com/l3blonde/grip-and-grin/internal/handler"
	"github.com/l3blonde/grip-and-grin/internal/images"
	"github.com/l3blonde/grip-and-grin/internal/infrastructure/database"
	"github.com/l3blonde/grip-and-grin/internal/logger"
	"github.com/l3blonde/grip-and-grin/internal/metrics"
	"github.com/l3blonde/grip-and-grin/internal/middleware"
	"github.com/l3blonde/grip-and-grin/internal/repository"
	"github.com/l3blonde/grip-and-grin/internal/service"
	"github.com/l3blonde/grip-and-grin/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	// Initialize image pipeline
	pipeline, err := images.NewPipeline(images.Config{
		BaseDir:    cfg.UploadDir,
		PublicPath: cfg.UploadPublicPath,
	})
	if err != nil {
		logger.Fatal("Failed to create image pipeline",
			slog.String("error", err.Error()))
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, categoryRepo, pipeline, v, cfg.PageSize)
	authService := service.NewAuthService(userRepo, v)
	userService := service.NewUserService(userRepo, v)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	adminHandler := handler.NewAdminHandler(articleService)
	authHandler := handler.NewAuthHandler(authService, tokens)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Stored originals and derivatives are served straight from disk
	router.Static(cfg.UploadPublicPath, cfg.UploadDir)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/articles", articleHandler.ListArticles)
		v1.GET("/articles/:slug", articleHandler.GetArticle)
		v1.GET("/search", articleHandler.Search)
		v1.GET("/categories", articleHandler.ListCategories)
		v1.GET("/categories/:slug/articles", articleHandler.ListByCategory)

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		profile := v1.Group("/profile")
		profile.Use(middleware.Authenticate(tokens))
		{
			profile.GET("", userHandler.Profile)
			profile.PUT("", userHandler.UpdateProfile)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.Authenticate(tokens))
		{
			articles := admin.Group("/articles")
			articles.Use(middleware.RequireArticleManager())
			{
				articles.GET("", adminHandler.ListAllArticles)
				articles.POST("", adminHandler.CreateArticle)
				articles.PUT("/:id", adminHandler.UpdateArticle)
				articles.DELETE("/:id", adminHandler.DeleteArticle)
			}

			users := admin.Group("/users")
			users.Use(middleware.RequireUserManager())
			{
				users.GET("", userHandler.ListUsers)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
