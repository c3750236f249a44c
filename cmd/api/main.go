package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"millet-market/internal/auth"
	"millet-market/internal/config"
	"millet-market/internal/database"
	"millet-market/internal/handler"
	"millet-market/internal/repository"
	"millet-market/internal/router"
	"millet-market/internal/service"
	"millet-market/internal/upload"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting millet-market API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)

	// Initialize image uploader with S3 and local fallback
	var uploader upload.Uploader
	if cfg.Upload.S3Enabled {
		uploader, err = upload.NewS3Uploader(ctx, cfg.Upload.S3Bucket, cfg.Upload.S3Region, cfg.Upload.S3Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 uploader, falling back to local file system")
			uploader, err = upload.NewLocalUploader(cfg.Upload.LocalDir, cfg.Upload.BaseURL, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize uploader: %w", err)
			}
		}
	} else {
		uploader, err = upload.NewLocalUploader(cfg.Upload.LocalDir, cfg.Upload.BaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize uploader: %w", err)
		}
		logger.Info().Msg("using local file system for product images (S3 disabled)")
	}

	// Initialize session tokens
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, logger)

	// Initialize services
	userService := service.NewUserService(userRepo, logger)
	productService := service.NewProductService(productRepo, logger)

	// Initialize HTTP handlers
	userHandler := handler.NewUserHandler(userService, tokens, logger)
	productHandler := handler.NewProductHandler(productService, uploader, logger)
	contactHandler := handler.NewContactHandler(logger)

	// Initialize router
	mux := router.New(userHandler, productHandler, contactHandler, tokens, cfg.Upload.LocalDir, cfg.CORS, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
