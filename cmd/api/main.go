package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/config"
	"github.com/sangkips/tradenet-api/internal/infrastructure/database"
	"github.com/sangkips/tradenet-api/internal/infrastructure/repository"
	"github.com/sangkips/tradenet-api/internal/presentation/http/handler"
	"github.com/sangkips/tradenet-api/internal/presentation/http/middleware"
	"github.com/sangkips/tradenet-api/internal/presentation/http/routes"
	"github.com/sangkips/tradenet-api/pkg/logger"
	"github.com/sangkips/tradenet-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := database.SeedSuperuser(context.Background(), db, cfg.Superuser.Email, cfg.Superuser.Password); err != nil {
		log.Warn().Err(err).Msg("failed to seed superuser")
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	productRepo := repository.NewProductRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	linkService := service.NewLinkService(linkRepo, productRepo)
	productService := service.NewProductService(productRepo, linkRepo)
	contactService := service.NewContactService(contactRepo, linkRepo)

	pageSize := cfg.App.PageSize
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Link:    handler.NewLinkHandler(linkService, pageSize),
		Product: handler.NewProductHandler(productService, pageSize),
		Contact: handler.NewContactHandler(contactService, pageSize),
		Admin:   handler.NewAdminHandler(linkService, productService),
	}

	stop := make(chan struct{})
	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	rateLimiter.Start(stop)

	router := routes.Setup(handlers, &routes.Deps{
		AuthService: authService,
		Cfg:         cfg,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Str("port", port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	close(stop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
