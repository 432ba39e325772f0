package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-presenter/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/weather-presenter/internal/adapter/kafka"
	"github.com/couchcryptid/weather-presenter/internal/adapter/sqlite"
	"github.com/couchcryptid/weather-presenter/internal/config"
	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/observability"
	"github.com/couchcryptid/weather-presenter/internal/pipeline"
	"github.com/couchcryptid/weather-presenter/internal/render"
	"github.com/couchcryptid/weather-presenter/internal/settings"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store, err := sqlite.Open(cfg.SettingsDBPath)
	if err != nil {
		logger.Error("failed to open settings store", "error", err, "path", cfg.SettingsDBPath)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.WidgetsFile != "" {
		if err := seedWidgets(context.Background(), store, cfg.WidgetsFile, logger); err != nil {
			logger.Error("failed to seed widgets", "error", err, "file", cfg.WidgetsFile)
			os.Exit(1)
		}
	}

	zones, err := render.NewZoneCache(cfg.ZoneCacheSize, func(hit bool) {
		result := "miss"
		if hit {
			result = "hit"
		}
		metrics.ZoneCache.WithLabelValues(result).Inc()
	})
	if err != nil {
		logger.Error("failed to create zone cache", "error", err)
		os.Exit(1)
	}
	renderer := render.NewRenderer(clockwork.NewRealClock(), zones, domain.DaytimeSource(cfg.DaytimeSource), logger, metrics)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(store, renderer, logger, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, renderer, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start presentation pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// seedWidgets upserts every widget declared in path. Existing widgets with
// other ids are left untouched.
func seedWidgets(ctx context.Context, store *sqlite.Store, path string, logger *slog.Logger) error {
	widgets, err := settings.LoadSeed(path)
	if err != nil {
		return err
	}
	for _, w := range widgets {
		if err := store.UpsertWidget(ctx, w); err != nil {
			return err
		}
	}
	logger.Info("seeded widgets", "count", len(widgets), "file", path)
	return nil
}
