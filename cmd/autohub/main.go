// Package main is the entry point for the AutoHub server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autohub/internal/cache"
	"autohub/internal/chat"
	"autohub/internal/config"
	"autohub/internal/database"
	"autohub/internal/handlers"
	"autohub/internal/router"
	"autohub/internal/rules"
	"autohub/internal/storage"
	"autohub/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the public page cache. The app degrades to
	// uncached rendering when it is unreachable.
	var pageCache *cache.PageCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, page cache disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	}

	// Connect to S3-compatible object storage (optional — app works without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Initialize data stores.
	dealershipStore := store.NewDealershipStore(db)
	vehicleStore := store.NewVehicleStore(db)
	leadStore := store.NewLeadStore(db)
	transactionStore := store.NewTransactionStore(db)
	contractTemplateStore := store.NewContractTemplateStore(db)
	contractStore := store.NewContractStore(db)
	saleStore := store.NewSaleStore(db)
	siteConfigStore := store.NewSiteConfigStore(db)

	// The editor assistant: keyword rule engine plus the chat session.
	chatSvc := chat.New(siteConfigStore, rules.New(nil), cfg.AssistantDelay)

	// Create handler groups with their dependencies.
	api := handlers.NewAPI(
		dealershipStore, vehicleStore, leadStore, transactionStore,
		contractTemplateStore, contractStore, saleStore,
		chatSvc, pageCache, storageClient, cfg.SiteBaseURL,
	)
	public := handlers.NewPublic(siteConfigStore, vehicleStore, dealershipStore, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, public)

	// Create the HTTP server with sensible timeouts. WriteTimeout leaves
	// room for the assistant's simulated thinking delay.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
