package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/digital-product-store/product/internal/api"
	"github.com/digital-product-store/product/internal/config"
	"github.com/digital-product-store/product/internal/dbauth"
	"github.com/digital-product-store/product/internal/repository"
	memoryrepo "github.com/digital-product-store/product/internal/repository/memory"
	psqlrepo "github.com/digital-product-store/product/internal/repository/psql"
	"github.com/digital-product-store/product/internal/service"
	"github.com/digital-product-store/product/internal/storage"
	memorystorage "github.com/digital-product-store/product/internal/storage/memory"
	s3storage "github.com/digital-product-store/product/internal/storage/s3"
	"github.com/digital-product-store/product/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Environment)

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		shutdownTracing, err := telemetry.Init(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			slog.Error("failed to initialize tracing", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				slog.Error("failed to shut down tracing", "error", err)
			}
		}()
	}

	// Metadata repository
	var (
		uploadRepo  repository.UploadRepository
		bookRepo    repository.BookRepository
		healthCheck func(ctx context.Context) error
	)
	switch cfg.DatabaseType {
	case "postgres":
		pool, err := newDBPool(ctx, cfg)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		uploadRepo = psqlrepo.NewUploadRepository(pool)
		bookRepo = psqlrepo.NewBookRepository(pool)
		healthCheck = func(ctx context.Context) error {
			_, err := pool.Exec(ctx, "SELECT 1")
			return err
		}
	case "memory":
		uploads := memoryrepo.NewUploadRepository()
		uploadRepo = uploads
		bookRepo = memoryrepo.NewBookRepository(uploads)
		healthCheck = func(ctx context.Context) error { return nil }
	}

	// Object store
	var store storage.Backend
	switch cfg.StorageBackend {
	case "s3":
		store, err = s3storage.NewS3Backend(ctx, s3storage.Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Endpoint:        cfg.S3.Endpoint,
			UsePathStyle:    cfg.S3.UsePathStyle,
		})
		if err != nil {
			slog.Error("failed to initialize S3 backend", "error", err)
			os.Exit(1)
		}
	case "memory":
		store = memorystorage.NewMemoryBackend()
	}

	// Services
	uploadService := service.NewUploadService(uploadRepo, store)
	bookService := service.NewBookService(bookRepo)

	// HTTP surface
	router := api.NewRouter(
		api.NewUploadHandler(uploadService, cfg.MaxUploadBytes),
		api.NewBookHandler(bookService),
		api.NewHealthHandler(healthCheck),
		cfg.AdminAPIKey,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: otelhttp.NewHandler(router, cfg.Tracing.ServiceName),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port,
			"database", cfg.DatabaseType, "storage", cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
}

// newDBPool builds the pgx pool with the credential provider the config
// selects: a static password, or an RDS IAM token fetched per connection
// attempt.
func newDBPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	var provider dbauth.TokenProvider
	switch cfg.DB.AuthMode {
	case "rds-iam":
		p, err := dbauth.NewRDSIAM(ctx, cfg.DB.Addr(), cfg.S3.Region, cfg.DB.Username)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		provider = dbauth.Static(cfg.DB.Password)
	}

	pool, err := dbauth.NewPool(ctx, cfg.DB.URL(), provider)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
