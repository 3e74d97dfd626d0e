package main

import (
	"log"
	"time"

	"footballhub/config"
	"footballhub/database"
	"footballhub/handlers"
	"footballhub/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	zapLogger := newLogger(cfg)
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	// Initialize database and handler wiring
	database.InitDB()
	defer database.CloseDB()
	handlers.Init(database.GetDB(), sugar)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting on the credential endpoints
	authGroup := api.Group("/auth")
	authGroup.Post("/login", middleware.AuthRateLimitMiddleware(), handlers.Login)
	authGroup.Post("/register", middleware.AuthRateLimitMiddleware(), handlers.Register)
	authGroup.Post("/logout", handlers.Logout)
	authGroup.Get("/profile", middleware.AuthMiddleware, handlers.GetProfile)
	authGroup.Post("/profile", middleware.AuthMiddleware, handlers.UpdateProfile)
	authGroup.Post("/change-password", middleware.AuthMiddleware, handlers.ChangePassword)
	authGroup.Get("/google", handlers.GoogleLogin)
	authGroup.Get("/google/callback", handlers.GoogleCallback)

	// Team routes: reads are public, mutations are admin-only
	api.Get("/teams", handlers.GetTeams)
	api.Get("/teams/:id", handlers.GetTeam)
	api.Post("/teams", middleware.AdminMiddleware, handlers.CreateTeam)
	api.Put("/teams/:id", middleware.AdminMiddleware, handlers.UpdateTeam)
	api.Delete("/teams/:id", middleware.AdminMiddleware, handlers.DeleteTeam)

	// Player routes: reads are public, mutations are admin-only
	api.Get("/players", handlers.GetPlayers)
	api.Get("/players/:id", handlers.GetPlayer)
	api.Post("/players", middleware.AdminMiddleware, handlers.CreatePlayer)
	api.Put("/players/:id", middleware.AdminMiddleware, handlers.UpdatePlayer)
	api.Delete("/players/:id", middleware.AdminMiddleware, handlers.DeletePlayer)

	// Comment routes: signed-in members; authorship is checked in the service
	api.Post("/players/:id/comments", middleware.AuthMiddleware, handlers.AddComment)
	api.Put("/players/:id/comments/:cid/edit", middleware.AuthMiddleware, handlers.EditComment)
	api.Delete("/players/:id/comments/:cid/delete", middleware.AuthMiddleware, handlers.DeleteComment)

	// Account listing (admin)
	api.Get("/accounts", middleware.AdminMiddleware, handlers.GetAccounts)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	sugar.Infow("server starting",
		"port", cfg.Port,
		"env", cfg.AppEnv,
		"google_login", cfg.GoogleEnabled(),
	)

	if err := app.Listen(":" + cfg.Port); err != nil {
		sugar.Fatalw("server failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		zl  *zap.Logger
		err error
	)
	if cfg.Production() {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return zl
}

func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Don't expose internal errors in production
		if cfg.Production() && code == fiber.StatusInternalServerError {
			message = "An error occurred. Please try again later."
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}
