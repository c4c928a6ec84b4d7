package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/qrobotics/storefront-api/internal/cache"
	"github.com/qrobotics/storefront-api/internal/config"
	"github.com/qrobotics/storefront-api/internal/database"
	"github.com/qrobotics/storefront-api/internal/handler"
	"github.com/qrobotics/storefront-api/internal/middleware"
	"github.com/qrobotics/storefront-api/internal/repository"
	"github.com/qrobotics/storefront-api/internal/service"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// main is the application entrypoint for the storefront admin API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting storefront api")

	utils.InitJWT(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis (login throttling only; the catalog itself is never cached)
	var rateLimiter *middleware.LoginRateLimiter
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable - login throttling disabled")
	} else {
		defer redisClient.Close()
		rateLimiter = middleware.NewLoginRateLimiter(redisClient)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// 5. Initialize services
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo)
	accountSvc := service.NewAccountService(userRepo)
	adminSvc := service.NewAdminService(adminRepo)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db),
		Category: handler.NewCategoryHandler(categorySvc, cfg.Env),
		Product:  handler.NewProductHandler(productSvc, cfg.Env),
		Order:    handler.NewOrderHandler(orderSvc, cfg.Env),
		User:     handler.NewUserHandler(accountSvc, cfg.Env),
		Auth:     handler.NewAuthHandler(adminSvc, rateLimiter, cfg.Env),
	}

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, middleware.NewJWTMiddleware())

	// 8. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 10. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	User     *handler.UserHandler
	Auth     *handler.AuthHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront reads
	router.GET("/v1/categories", handlers.Category.ListCategories)
	router.GET("/v1/categories/names", handlers.Category.ListCategoryNames)
	router.GET("/v1/products", handlers.Product.ListProducts)
	router.GET("/v1/products/:id", handlers.Product.GetProduct)

	// User account endpoints (driven by the storefront)
	users := router.Group("/v1/users")
	{
		users.POST("", handlers.User.CreateUser)
		users.POST("/addresses", handlers.User.CreateAddress)
		users.PUT("/name", handlers.User.UpdateName)
		users.PUT("/password", handlers.User.UpdatePassword)
		users.PUT("/phone", handlers.User.UpdatePhone)
		users.GET("/:email", handlers.User.GetUserByEmail)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Admin accounts
		admin.POST("/admins", handlers.Auth.CreateAdmin)
		admin.GET("/admins/:email", handlers.Auth.GetAdminByEmail)

		// Category management
		admin.POST("/categories", handlers.Category.CreateCategory)
		admin.DELETE("/categories/:id", handlers.Category.DeleteCategory)

		// Product management
		admin.POST("/products", handlers.Product.CreateProduct)
		admin.PUT("/products/:id", handlers.Product.UpdateProduct)
		admin.DELETE("/products/:id", handlers.Product.DeleteProduct)

		// Order management
		admin.GET("/orders", handlers.Order.ListOrders)
		admin.GET("/orders/:id", handlers.Order.GetOrder)
		admin.PUT("/orders/:id/status", handlers.Order.UpdateOrderStatus)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
