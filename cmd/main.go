package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/usecase"
	"storefront/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level %q, falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Storefront Service...")

	// --- Document Store ---
	store, err := db.Open(cfg.DataPath, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to open data store: %v", err)
	}
	logger.Infof("Data store opened at %s", cfg.DataPath)

	// --- Dependency Injection ---
	// Repository Layer
	catalogRepo := repository.NewDocumentCatalogRepository(store, logger)
	cartRepo := repository.NewDocumentCartRepository(store, logger)
	orderRepo := repository.NewDocumentOrderRepository(store, logger)
	logger.Info("Repositories initialized.")

	// Usecase Layer
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, catalogRepo, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, catalogRepo, orderRepo, logger)
	logger.Info("Use cases initialized.")

	catalogHandler := delivery.NewCatalogHandler(catalogUseCase, cartUseCase, logger)
	cartHandler := delivery.NewCartHandler(cartUseCase, logger)
	checkoutHandler := delivery.NewCheckoutHandler(checkoutUseCase, logger)
	pagesHandler := delivery.NewPagesHandler(logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// Route Registration
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	pagesHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	// Start Server
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
