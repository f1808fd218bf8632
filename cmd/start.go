package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"common-games/core/config"
	"common-games/core/database"
	"common-games/core/loader"
	"common-games/core/logger"
	"common-games/core/middleware/auth"
	"common-games/core/middleware/rayid"
	"common-games/core/secrets"
	"common-games/core/steam"

	"common-games/feature/games"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Common Games API
// @version 1.0
// @description API for resolving the games a group of users all own.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the common games server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the persistent store. Unlike an optional cache,
		// the feature cannot run without it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. External collaborators
		secretStore := secrets.NewEnvStore()
		steamClient := steam.NewClient(cfg.Steam, secretStore)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(games.NewFeature(db, steamClient, logg, cfg.Games))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Health probe stays public
		app.Get("/health", func(c *fiber.Ctx) error {
			status := fiber.Map{"status": "ok"}
			if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				return c.Status(fiber.StatusServiceUnavailable).JSON(status)
			}
			return c.JSON(status)
		})

		// Auth (protect the API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
