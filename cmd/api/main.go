package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/cache"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/config"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/database"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/handler"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/routes"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	stockLogRepo := repository.NewStockLogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize report cache. A missing Redis degrades reports to
	// uncached, not the whole service to dead.
	var reportCache cache.ReportCache = cache.NoopReportCache{}
	redisCache := cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("Warning: Redis unavailable, report caching disabled: %v", err)
	} else {
		reportCache = redisCache
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, stockLogRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	checkoutService := service.NewCheckoutService(cartRepo, checkoutRepo, productRepo, notificationService)
	transactionService := service.NewTransactionService(transactionRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, transactionRepo)
	reportService := service.NewReportService(reportRepo, reportCache, cfg.Redis.ReportTTL)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Product:      handler.NewProductHandler(productService),
		Category:     handler.NewCategoryHandler(categoryService),
		Cart:         handler.NewCartHandler(cartService),
		Checkout:     handler.NewCheckoutHandler(checkoutService),
		Transaction:  handler.NewTransactionHandler(transactionService),
		Invoice:      handler.NewInvoiceHandler(invoiceService),
		Report:       handler.NewReportHandler(reportService),
		Notification: handler.NewNotificationHandler(notificationService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
