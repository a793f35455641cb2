package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tol-insights/potentialmap/internal/api"
	"github.com/tol-insights/potentialmap/internal/config"
	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	weights := scoring.WeightSet{
		Household:   cfg.Scoring.Weights.Household,
		Install:     cfg.Scoring.Weights.Install,
		Retention:   cfg.Scoring.Weights.Retention,
		MarketShare: cfg.Scoring.Weights.MarketShare,
		Speed:       cfg.Scoring.Weights.Speed,
	}
	if err := weights.Validate(); err != nil {
		logger.Error("invalid scoring weights", "error", err)
		os.Exit(1)
	}

	// Load once; held read-only for the lifetime of the process.
	rows, err := dataset.Load(cfg.Dataset.Path, logger)
	if err != nil {
		if errors.Is(err, dataset.ErrParse) {
			logger.Error("structural parse failure while loading dataset", "path", cfg.Dataset.Path, "error", err)
		} else {
			logger.Error("unexpected error while loading dataset", "path", cfg.Dataset.Path, "error", err)
		}
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", cfg.Dataset.Path, "rows", len(rows))

	scorer := scoring.NewScorer(weights, logger)
	scored, err := scorer.Score(rows)
	if err != nil {
		logger.Error("preprocessing failed", "error", err)
		os.Exit(1)
	}
	ds := dataset.New(scored)
	logger.Info("dataset scored", "snapshot_id", ds.ID, "rows", len(ds.Rows))

	router := api.NewRouter(ds, scorer, cfg, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
