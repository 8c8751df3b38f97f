// Package main is the entrypoint for the catalog API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/coachhub/catalog/internal/cache"
	"github.com/coachhub/catalog/internal/config"
	"github.com/coachhub/catalog/internal/events"
	"github.com/coachhub/catalog/internal/handler"
	"github.com/coachhub/catalog/internal/metrics"
	"github.com/coachhub/catalog/internal/repository"
	"github.com/coachhub/catalog/internal/router"
	"github.com/coachhub/catalog/internal/server"
	"github.com/coachhub/catalog/internal/service"
)

// catalogStore is what the services persist to and readiness pings.
type catalogStore interface {
	service.Store
	Ping(ctx context.Context) error
	Close()
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		os.Exit(1)
	}

	metricsRecorder := metrics.NewInMemory()

	// Redis is optional. Nil interfaces switch the cache and events off.
	var (
		listCache   service.ListCache
		publisher   service.EventPublisher
		cacheHealth handler.HealthChecker
		cacheClient *cache.Cache
	)
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL, cfg.ListCacheTTL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			store.Close()
			os.Exit(1)
		}
		logger.Info("connected to Redis", "list_cache_ttl", cfg.ListCacheTTL)

		listCache = cacheClient
		cacheHealth = cacheClient
		if cfg.EventsEnabled {
			publisher = events.NewPublisher(cacheClient.Client(), logger, metricsRecorder)
		}
	}

	catalogService := service.NewCatalogService(store, listCache, publisher, metricsRecorder, logger)

	r := router.New(router.Config{
		CreditPackages:     handler.NewCreditPackageHandler(catalogService, logger),
		Skills:             handler.NewSkillHandler(catalogService, logger),
		Health:             handler.NewHealthHandler(store, cacheHealth),
		Metrics:            handler.NewMetricsHandler(metricsRecorder),
		Logger:             logger,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		IsDevelopment:      cfg.IsDevelopment(),
	})

	srv := server.New(r, server.Options{
		Port:            cfg.ListenPort(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown(cfg.StoreBackend, func(ctx context.Context) error {
		store.Close()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.ListenPort(),
		"store", cfg.StoreBackend,
		"redis", cacheClient != nil,
		"events", publisher != nil,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// openStore connects the configured backend and bootstraps the schema.
// Failures are logged here with credentials redacted.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (catalogStore, error) {
	if cfg.StoreBackend == config.StoreMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return repository.NewMemoryStore(), nil
	}

	dsn := cfg.DatabaseDSN()
	repo, err := repository.New(ctx, repository.PoolConfig{
		DatabaseURL: dsn,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
	})
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, dsn)),
			slog.String("database_url", redactURL(dsn)),
		)
		return nil, err
	}
	logger.Info("connected to database")

	if cfg.DBAutoMigrate {
		if err := repo.Migrate(); err != nil {
			logger.Error("failed to bootstrap schema", slog.String("error", sanitizeError(err, dsn)))
			repo.Close()
			return nil, err
		}
		logger.Info("schema up to date")
	}

	return repo, nil
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

// redactURL keeps the user name but drops any password from a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
