package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	api "howtouseai-backend/cmd/api"
	"howtouseai-backend/pkg/config"
	"howtouseai-backend/pkg/database"
	"howtouseai-backend/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close(db)

	// Auto-migrate database schemas
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	backend, err := newIconBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize icon storage: %w", err)
	}
	icons := storage.NewIconStore(backend, storage.Options{MaxSize: cfg.IconMaxBytes})

	// Initialize HTTP handler
	handler := api.NewHandler(db, cfg, icons)
	return handler.Start(ctx, ":"+cfg.Port)
}

func newIconBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageDriver {
	case "local", "":
		zap.L().Info("icon storage on local disk", zap.String("dir", cfg.IconDir))
		return storage.NewLocalBackend(cfg.IconDir), nil
	case "minio":
		backend, err := storage.NewMinIOBackend(ctx, storage.MinIOOptions{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			UseSSL:    cfg.MinIOUseSSL,
		})
		if err != nil {
			return nil, err
		}
		zap.L().Info("icon storage on minio", zap.String("endpoint", cfg.MinIOEndpoint), zap.String("bucket", cfg.MinIOBucket))
		return backend, nil
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
