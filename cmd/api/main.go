package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"inquiryapi/internal/config"
	"inquiryapi/internal/database"
	"inquiryapi/internal/logging"
	"inquiryapi/internal/server"
	"inquiryapi/internal/services"
	"inquiryapi/internal/store"
	"inquiryapi/internal/uploads"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 60 * time.Second
	writeTimeout    = 60 * time.Second
	idleTimeout     = 60 * time.Second
	metricsInterval = 15 * time.Second

	reconnectInterval = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.Bool("debug", cfg.App.Debug),
		zap.String("host", cfg.App.Host),
		zap.String("port", cfg.App.Port),
	)

	docs := store.NewLazyStore(func() (*gorm.DB, error) {
		return database.Open(cfg.Database, logger, &store.Document{})
	}, reconnectInterval, logger)
	if err := docs.Connect(); err != nil {
		// Keep serving: submissions fail with a database error until the store is reachable
		logger.Warn("document store unavailable at startup", zap.Error(err))
	}
	defer func() {
		logger.Info("closing database connections")
		if err := docs.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
		}
	}()

	files := uploads.New(cfg.Uploads.Dir)
	if err := files.Ensure(); err != nil {
		// The directory is created again on each submission; a failure here is not fatal
		logger.Warn("upload directory not ready", zap.String("dir", files.Dir()), zap.Error(err))
	}

	handler := server.New(cfg, logger,
		services.NewHealthService(docs, cfg.Database, logger),
		services.NewInquiryService(docs, files, logger),
	)

	addr := net.JoinHostPort(cfg.App.Host, cfg.App.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http")),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go refreshMetrics(ctx, docs)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", addr), zap.String("upload_dir", files.Dir()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("received shutdown signal, starting graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during graceful shutdown", zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("shutdown timeout exceeded, forcing close")
			_ = httpServer.Close()
		}
	}

	logger.Info("server shutdown complete")
	return nil
}

// refreshMetrics publishes connection pool gauges until ctx is done
func refreshMetrics(ctx context.Context, docs *store.LazyStore) {
	ticker := time.NewTicker(metricsInterval)
	defer ticker.Stop()
	for {
		docs.RefreshConnectionMetrics()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
