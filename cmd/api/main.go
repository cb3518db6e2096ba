package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/fixture"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/persist"
	"admin-dashboard/internal/router"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting admin dashboard server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the durable state slot
	slot, err := persist.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open state slot: %w", err)
	}
	defer slot.Close()
	bridge := persist.NewBridge(slot, logger)

	// Fixture source with optional S3 and local fallback
	reader, err := newFixtureReader(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fixtures: %w", err)
	}
	lo, hi := cfg.Fixtures.LatencyRange()
	source := fixture.NewSource(reader, fixture.SourceConfig{
		ProductsName: cfg.Fixtures.ProductsFile,
		OrdersName:   cfg.Fixtures.OrdersFile,
		Latency:      fixture.Latency{Min: lo, Max: hi},
	}, logger)

	// Restore the persisted snapshot, or start empty and load the fixtures
	initial, restored := store.Initial(ctx, bridge)
	st := store.New(initial, bridge, logger)
	if !restored {
		go func() {
			if err := st.LoadAll(ctx, source.Products, source.Orders); err != nil {
				logger.Warn().Err(err).Msg("initial fixture load failed")
			}
		}()
	}

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		return fmt.Errorf("failed to resolve metrics timezone: %w", err)
	}

	// Initialize services
	productService := service.NewProductService(st, source, cfg.Dashboard.PageSize, logger)
	orderService := service.NewOrderService(st, source, cfg.Dashboard.PageSize, logger)
	dashboardService := service.NewDashboardService(st, loc, nil, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, dashboardHandler, logger)

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
			Bool("restored", restored).
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

// newFixtureReader picks the local reader (embedded or FIXTURE_DIR) and puts
// S3 in front of it when enabled.
func newFixtureReader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (fixture.Reader, error) {
	var local fixture.Reader
	if cfg.Fixtures.Dir != "" {
		local = fixture.NewDirReader(cfg.Fixtures.Dir, logger)
		logger.Info().Str("dir", cfg.Fixtures.Dir).Msg("using fixture directory")
	} else {
		local = fixture.NewEmbeddedReader(logger)
	}

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local fixtures (S3 disabled)")
		return local, nil
	}

	remote, err := fixture.NewS3Reader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 reader, falling back to local fixtures only")
		return local, nil
	}
	return fixture.NewFallbackReader(remote, local, logger), nil
}
