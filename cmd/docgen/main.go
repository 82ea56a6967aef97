package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/advocflow/docgen/internal/config"
	"github.com/advocflow/docgen/internal/handler"
	"github.com/advocflow/docgen/internal/history"
	"github.com/advocflow/docgen/internal/observability"
	"github.com/advocflow/docgen/internal/pdfapi"
	"github.com/advocflow/docgen/internal/resilience"
	"github.com/advocflow/docgen/internal/webhook"
	"github.com/advocflow/docgen/pkg/assembler"
	"github.com/advocflow/docgen/pkg/render"
	"github.com/advocflow/docgen/pkg/renderers/print"
)

func main() {
	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("history_db", cfg.HistoryDBPath),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
	)

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Resilience ---
	retryCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
	}

	// --- Renderers ---
	registry := render.NewRegistry()
	printRenderer, err := print.New()
	if err != nil {
		logger.Fatal("failed to initialise print renderer", zap.Error(err))
	}
	registry.MustRegister(printRenderer)

	// --- History store ---
	store, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		logger.Fatal("failed to open history store", zap.Error(err))
	}
	defer store.Close()

	// --- Router ---
	router := handler.NewRouter(handler.Deps{
		Assembler: assembler.New(),
		Renderers: registry,
		Webhook:   webhook.New(cfg.HTTPTimeout, retryCfg, logger),
		PDF:       pdfapi.New(cfg.PDFAPIURL, cfg.PDFAPIKey, cfg.HTTPTimeout, retryCfg, logger),
		History:   store,
		Config:    cfg,
		Metrics:   metrics,
		Logger:    logger,
	})

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
