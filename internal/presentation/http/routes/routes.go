package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/senicpos/pos-api/internal/config"
	domainRepo "github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/internal/presentation/http/handler"
	"github.com/senicpos/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer     *handler.CustomerHandler
	Inventory    *handler.InventoryHandler
	Order        *handler.OrderHandler
	Subscription *handler.SubscriptionHandler
	Dashboard    *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.TenantMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Per-tenant rate limiter
	rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		customers := v1.Group("/customers")
		{
			customers.POST("", h.Customer.Create)
			customers.GET("/:id", h.Customer.Get)
			customers.GET("/tenant/:tenantId", h.Customer.ListByTenant)
			customers.PUT("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Deactivate)
			customers.POST("/:id/loyalty-points", h.Customer.AdjustLoyaltyPoints)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("", h.Inventory.Create)
			inventory.GET("/:id", h.Inventory.Get)
			inventory.GET("/tenant/:tenantId", h.Inventory.ListByTenant)
			inventory.GET("/tenant/:tenantId/low-stock", h.Inventory.ListLowStock)
			inventory.GET("/tenant/:tenantId/barcode/:barcode", h.Inventory.GetByBarcode)
			inventory.PUT("/:id", h.Inventory.Update)
			inventory.DELETE("/:id", h.Inventory.Delete)
		}

		orders := v1.Group("/orders")
		{
			idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			})
			orders.POST("", idempotency, h.Order.Create)
			orders.GET("/:id", h.Order.Get)
			orders.GET("/tenant/:tenantId", h.Order.ListByTenant)
			orders.POST("/:id/cancel", h.Order.Cancel)
			orders.POST("/:id/receipt", h.Order.PrintReceipt)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.POST("", h.Subscription.Create)
			subscriptions.GET("/expiring", h.Subscription.ListExpiring)
			subscriptions.GET("/tenant/:tenantId", h.Subscription.GetByTenant)
			subscriptions.POST("/tenant/:tenantId/renew", h.Subscription.Renew)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/tenant/:tenantId", h.Dashboard.GetStats)
		}
	}

	return router
}
