package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/senicpos/pos-api/internal/application/service"
	"github.com/senicpos/pos-api/internal/config"
	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/infrastructure/database"
	"github.com/senicpos/pos-api/internal/infrastructure/repository"
	"github.com/senicpos/pos-api/internal/presentation/http/handler"
	"github.com/senicpos/pos-api/internal/presentation/http/routes"
	"github.com/senicpos/pos-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		logger.Warn("Printer configuration invalid, receipts disabled", zap.Error(err))
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	// Initialize services
	customerService := service.NewCustomerService(customerRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	orderService := service.NewOrderService(orderRepo, inventoryRepo, customerRepo, logger)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	dashboardService := service.NewDashboardService(orderRepo, customerRepo, inventoryRepo)
	printerService := service.NewPrinterService(
		receiptPrinter,
		orderRepo,
		entity.ReceiptHeader{
			StoreName: cfg.Store.Name,
			Address:   cfg.Store.Address,
			Phone:     cfg.Store.Phone,
		},
		cfg.Printer.Type,
		logger,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:     handler.NewCustomerHandler(customerService),
		Inventory:    handler.NewInventoryHandler(inventoryService),
		Order:        handler.NewOrderHandler(orderService, printerService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          logger,
		IdempotencyRepo: idempotencyRepo,
	})

	logger.Info("Starting server",
		zap.String("name", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
