package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if cfg.SeedCategories {
		if _, err := database.SeedCategories(database.DB); err != nil {
			slog.Error("category seed failed", "error", err)
			os.Exit(1)
		}
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.Persist(database.DB)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

	// Services
	store := repository.NewStore(database.DB)
	authService := services.NewAuthService(store, cfg)
	userService := services.NewUserService(store, cfg)
	sellerService := services.NewSellerService(store)
	addressService := services.NewAddressService(store)
	productService := services.NewProductService(store)
	categoryService := services.NewCategoryService(store)

	// Handlers
	h := routes.Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Health:        handlers.NewHealthHandler(database.DB),
		Users:         handlers.NewUserHandler(userService),
		UserAddress:   handlers.NewUserAddressHandler(addressService),
		Sellers:       handlers.NewSellerHandler(sellerService, productService),
		SellerAddress: handlers.NewSellerAddressHandler(addressService),
		Categories:    handlers.NewCategoryHandler(categoryService),
		Products:      handlers.NewProductHandler(productService),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, store, h, routes.DefaultOptions())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := database.Close(database.DB); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
