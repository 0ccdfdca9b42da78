package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/val100/market/config"
	"github.com/val100/market/internal/app/controller"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/internal/app/service"
	"github.com/val100/market/internal/db"
	"github.com/val100/market/internal/middleware"
	"github.com/val100/market/internal/router"
	"github.com/val100/market/internal/scheduler"
	"github.com/val100/market/internal/storage"
	"github.com/val100/market/pkg/logger"
	"github.com/val100/market/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting whisky market server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis is optional, the cart cache degrades to pass-through without it
	var cartCache *service.CartCache
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Failed to connect to Redis, continuing without cart cache", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
			cartCache = service.NewCartCache(redis.GetClient())
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	regionRepo := repository.NewRegionRepository(db.GetDB())
	distilleryRepo := repository.NewDistilleryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	catalogService := service.NewCatalogService(regionRepo, distilleryRepo)
	productService := service.NewProductService(productRepo, distilleryRepo, regionRepo)
	cartService := service.NewCartService(cartRepo, productRepo, cartCache)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	showcaseController := controller.NewShowcaseController(catalogService, productService, cfg.Market.DefaultPageSize)
	productController := controller.NewProductController(productService, cfg.Market.DefaultPageSize)
	cartController := controller.NewCartController(cartService, cfg.Market.DeliveryCost)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		showcaseController,
		productController,
		cartController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start stale cart purge scheduler
	cartScheduler := scheduler.NewCartScheduler(cartRepo, cfg.Market.StaleCartAfter)
	if err := cartScheduler.Start(); err != nil {
		logger.Error("Failed to start cart scheduler", err)
	}
	defer cartScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
