package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/seo-optimizer/content-analyzer/analyzer"
	"github.com/seo-optimizer/content-analyzer/api"
	"github.com/seo-optimizer/content-analyzer/config"
	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/metrics"
	"github.com/seo-optimizer/content-analyzer/middleware"
	"github.com/seo-optimizer/content-analyzer/stats"
)

const (
	serviceName     = "content-analyzer"
	shutdownTimeout = 10 * time.Second
	retainMonths    = 12
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(serviceName, logging.ParseLevel(cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	storage, err := stats.NewStorage(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("stats storage: %w", err)
	}
	storage.Cleanup(retainMonths)
	statistics := logging.NewStatistics(filepath.Join(cfg.DataDir, "statistics.json"))

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(serviceName)
	registry.MustRegister(collector.GetCollectors()...)
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []analyzer.Option{
		analyzer.WithLogger(logger),
		analyzer.WithStats(storage),
		analyzer.WithMetrics(collector),
		analyzer.WithCache(cfg.CacheTTL, cfg.MaxCacheSize),
		analyzer.WithConcurrency(cfg.BatchConcurrency),
		analyzer.WithMainContentExtraction(cfg.ExtractMainContent),
		analyzer.WithDefaultLanguage(cfg.DefaultLanguage),
	}
	if cfg.RulesFile != "" {
		ruleSet, err := config.LoadRules(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("rules: %w", err)
		}
		logger.Info("loaded rule overrides", "file", cfg.RulesFile, "rules", len(ruleSet))
		opts = append(opts, analyzer.WithRules(ruleSet))
	}
	seoAnalyzer := analyzer.New(opts...)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	router := api.NewRouter(api.Deps{
		Analyzer:    seoAnalyzer,
		Logger:      logger,
		Statistics:  statistics,
		Metrics:     collector,
		Registry:    registry,
		RateLimiter: rateLimiter,
		AccessLog:   cfg.DevMode,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pruneLimiter(ctx, rateLimiter, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", "http://localhost:"+cfg.Port, "rules", len(seoAnalyzer.Rules()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}

	seoAnalyzer.Close()
	if err := storage.Shutdown(); err != nil {
		logger.Error("flush monthly stats", "error", err)
	}
	if err := statistics.Save(); err != nil {
		logger.Error("save statistics", "error", err)
	}
	return nil
}

// pruneLimiter drops idle client buckets
func pruneLimiter(ctx context.Context, rl *middleware.RateLimiter, logger logging.Logger) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Prune(10 * time.Minute); n > 0 {
				logger.Debug("pruned rate limit buckets", "count", n)
			}
		}
	}
}
