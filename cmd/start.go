package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"minio-storage/core/backend"
	"minio-storage/core/backend/miniostore"
	"minio-storage/core/config"
	"minio-storage/core/database"
	"minio-storage/core/loader"
	"minio-storage/core/logger"
	"minio-storage/core/middleware/auth"
	"minio-storage/core/middleware/requestid"

	"minio-storage/feature/files"
	"minio-storage/feature/files/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "minio-storage/docs/swagger"
)

// @title MinIO Storage Gateway API
// @version 1.0
// @description HTTP surface of the MinIO-backed storage gateway.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage gateway server",
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

		// 3. Open the storage backend through the registry
		store, err := backend.Open(cfg.StorageBackend, miniostore.OptionsFromConfig(cfg.Minio))
		if err != nil {
			logg.Fatal("Failed to open storage backend",
				zap.String("backend", cfg.StorageBackend), zap.Error(err))
		}
		logg.Info("Storage backend ready",
			zap.String("backend", cfg.StorageBackend),
			zap.String("bucket", cfg.Minio.BucketName))

		// 4. Connect to the object index database (optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Object index unavailable, serving from bucket only", zap.Error(err))
		} else {
			db = conn
			if err := db.AutoMigrate(&models.ObjectRecord{}); err != nil {
				logg.Warn("Object index migration failed", zap.Error(err))
				db = nil
			} else {
				logg.Info("Object index connected")
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(files.NewFeature(store, logg, db))

		// Middleware Registration
		// RequestID must be first to trace everything
		app.Use(requestid.New())

		// Logging middleware (Zap + request id)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
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

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (protect API)
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
