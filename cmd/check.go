package cmd

import (
	"log"

	"minio-storage/core/config"
	"minio-storage/core/logger"
	"minio-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createBucketFlag bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and probe the storage bucket",
	Long: `Validates the MINIO_* connection settings and verifies the configured
bucket is reachable. With --create-bucket, a missing bucket is created.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		if err := cfg.Minio.Validate(); err != nil {
			logg.Fatal("Configuration invalid", zap.Error(err))
		}
		logg.Info("Configuration valid",
			zap.String("endpoint", cfg.Minio.Endpoint),
			zap.String("bucket", cfg.Minio.BucketName),
			zap.Bool("secure", cfg.Minio.Secure))

		client, err := storage.NewClient(cfg.Minio)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		ctx := cmd.Context()
		exists, err := client.BucketExists(ctx, cfg.Minio.BucketName)
		if err != nil {
			logg.Fatal("Bucket probe failed", zap.Error(err))
		}

		if exists {
			logg.Info("Bucket reachable", zap.String("bucket", cfg.Minio.BucketName))
			return
		}

		if !createBucketFlag {
			logg.Fatal("Bucket does not exist (re-run with --create-bucket to create it)",
				zap.String("bucket", cfg.Minio.BucketName))
		}

		if err := client.MakeBucket(ctx, cfg.Minio.BucketName, minio.MakeBucketOptions{Region: cfg.Minio.Region}); err != nil {
			logg.Fatal("Failed to create bucket", zap.Error(err))
		}
		logg.Info("Bucket created", zap.String("bucket", cfg.Minio.BucketName))
	},
}

func init() {
	checkCmd.Flags().BoolVar(&createBucketFlag, "create-bucket", false, "create the bucket if it does not exist")
	RootCmd.AddCommand(checkCmd)
}
