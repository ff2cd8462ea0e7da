package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/handler"
	"stockroom/internal/repository"
	"stockroom/internal/router"
	"stockroom/internal/service"
	"stockroom/internal/view"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting stockroom server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open database and bring the schema up to date
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db, logger)
	itemRepo := repository.NewItemRepository(db, logger)

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, logger)
	itemService := service.NewItemService(itemRepo, categoryRepo, logger)
	dashboardService := service.NewDashboardService(itemRepo, categoryRepo, logger)

	// Initialize template renderer and page handlers
	renderer, err := view.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	dashboardHandler := handler.NewDashboardHandler(dashboardService, renderer, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, renderer, logger)
	itemHandler := handler.NewItemHandler(itemService, categoryService, renderer, logger)

	// Initialize router
	mux := router.New(dashboardHandler, categoryHandler, itemHandler, logger)

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

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
