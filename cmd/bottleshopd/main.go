// Package main is the entry point for the bottleshop catalog API server.
// It loads configuration, wires the catalog source (Postgres store or the
// built-in fixture), optional Valkey cache and S3 image storage, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bottleshop/internal/cache"
	"bottleshop/internal/config"
	"bottleshop/internal/database"
	"bottleshop/internal/fixture"
	"bottleshop/internal/handlers"
	"bottleshop/internal/middleware"
	"bottleshop/internal/router"
	"bottleshop/internal/storage"
	"bottleshop/internal/store"
)

// staticDir holds the product images served under /static and synced to
// S3 when object storage is configured.
const staticDir = "./static"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"db", cfg.DBConfigured(),
		"cache", cfg.CacheConfigured(),
	)

	// Connect to S3-compatible object storage (optional). When configured,
	// local images are synced to the bucket and image URLs point at it.
	imageBase := cfg.StaticBaseURL
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize s3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storageClient.EnsureBucket(ctx); err != nil {
			cancel()
			slog.Error("failed to ensure s3 bucket", "error", err)
			os.Exit(1)
		}
		if err := storageClient.SyncDir(ctx, staticDir); err != nil {
			slog.Warn("image sync to s3 incomplete", "error", err)
		}
		cancel()

		imageBase = storageClient.BaseURL()
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "image_base", imageBase)
	} else {
		slog.Info("s3 storage not configured, serving images locally", "image_base", imageBase)
	}

	// Pick the catalog source: Postgres when configured, the built-in
	// fixture otherwise.
	var source handlers.CatalogSource
	if cfg.DBConfigured() {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}

		source = store.NewCatalogStore(db, imageBase)
		slog.Info("catalog source: postgres", "host", cfg.DBHost)
	} else {
		source = fixture.New(imageBase)
		slog.Info("catalog source: built-in fixture")
	}

	// Valkey-backed home payload cache (optional).
	var homeCache *cache.HomeCache
	if cfg.CacheConfigured() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		homeCache = cache.NewHomeCache(valkeyClient, cfg.HomeCacheTTL)
		slog.Info("home cache enabled", "ttl", cfg.HomeCacheTTL.String())
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	catalogHandlers := handlers.NewCatalog(source, homeCache)
	orderHandlers := handlers.NewOrders(source)

	opts := router.Options{RateLimiter: rateLimiter}
	if storageClient == nil {
		opts.StaticDir = staticDir
	}
	r := router.New(catalogHandlers, orderHandlers, opts)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
