package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/config"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	domainRepo "github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/handler"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/middleware"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Product      *handler.ProductHandler
	Category     *handler.CategoryHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Transaction  *handler.TransactionHandler
	Invoice      *handler.InvoiceHandler
	Report       *handler.ReportHandler
	Notification *handler.NotificationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	adminOnly := middleware.RequireRole(enum.RoleAdmin)

	// Profile
	protected.GET("/profile", h.Auth.Profile)

	// User management (admin)
	protected.POST("/auth/register", adminOnly, h.Auth.Register)
	users := protected.Group("/users", adminOnly)
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/search", h.Product.Lookup)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", adminOnly, h.Product.Create)
		products.PUT("/:id", adminOnly, h.Product.Update)
		products.DELETE("/:id", adminOnly, h.Product.Delete)
		products.POST("/:id/stock", adminOnly, h.Product.AdjustStock)
	}
	protected.GET("/stock-logs", adminOnly, h.Product.StockLogs)

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", adminOnly, h.Category.Create)
		categories.PUT("/:id", adminOnly, h.Category.Update)
		categories.DELETE("/:id", adminOnly, h.Category.Delete)
	}

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.View)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/add", h.Cart.AddItem)
		cart.PUT("/items/:id", h.Cart.UpdateItem)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.PUT("/:id", h.Cart.UpdateItem)
		cart.DELETE("/:id", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	// Checkout requires an idempotency key so a retried request replays the
	// original transaction instead of creating a second one.
	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})
	protected.POST("/checkout", idempotency, h.Checkout.Checkout)

	// Transactions (read side)
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.GET("/latest", h.Transaction.Latest)
		transactions.GET("/today", h.Transaction.Today)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.POST("/:id/invoice", h.Invoice.Generate)
		transactions.GET("/:id/invoice", h.Invoice.GetByTransaction)
	}

	// Invoices
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id/status", adminOnly, h.Invoice.UpdateStatus)
		invoices.PATCH("/:id/status", adminOnly, h.Invoice.UpdateStatus)
	}

	// Notifications
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("/read-all", h.Notification.MarkAllRead)
		notifications.POST("/:id/read", h.Notification.MarkRead)
	}

	// Reports (admin)
	reports := protected.Group("/reports", adminOnly)
	{
		reports.GET("/revenue", h.Report.Revenue)
		reports.GET("/sales", h.Report.Sales)
	}
}
