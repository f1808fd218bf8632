package cmd

import (
	"context"
	"log"
	"time"

	"common-games/core/config"
	"common-games/core/database"
	"common-games/core/logger"
	"common-games/core/secrets"
	"common-games/core/steam"
	"common-games/core/storage"
	"common-games/feature/games"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the game catalog to object storage",
	Long:  `Uploads a timestamped JSON snapshot of the classified game catalog to the configured bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		steamClient := steam.NewClient(cfg.Steam, secrets.NewEnvStore())
		svc := games.NewService(db, steamClient, logg, cfg.Games, time.Now)

		object, err := svc.ExportCatalog(context.Background(), store, cfg.Storage.Bucket)
		if err != nil {
			logg.Fatal("Catalog export failed", zap.Error(err))
		}

		logg.Info("Catalog exported",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", object),
		)
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
