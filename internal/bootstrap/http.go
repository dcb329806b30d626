package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dataetica/dataetica-api/config"
	"github.com/dataetica/dataetica-api/internal/data"
	httpx "github.com/dataetica/dataetica-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:       cfg.Services.Auth,
		Posts:      cfg.Services.Posts,
		Categories: cfg.Services.Categories,
		Audit:      cfg.Services.AuditRepo,
		Limiter:    cfg.Services.Limiter,
		Policies: httpx.RateLimitPolicies{
			Login:   appCfg.RateLimit.LoginPolicy(),
			Content: appCfg.RateLimit.ContentPolicy(),
			Default: appCfg.RateLimit.DefaultPolicy(),
		},
		DB:           dbProbe(cfg.DB),
		Cache:        cacheProbe(cfg.Services.Cache),
		CookieSecure: appCfg.Auth.CookieSecure,
		Logger:       logger,
	}

	handler := buildHTTPHandler(logger, services, appCfg.HTTP)
	return startServer(logger, handler, appCfg.HTTP)
}

// Order: Recover -> Logging -> Compression -> Router.
func buildHTTPHandler(logger *slog.Logger, services httpx.RouterServices, cfg config.HTTPConfig) http.Handler {
	h := httpx.NewRouter(services)
	if cfg.CompressionEnabled {
		h = httpx.Compression()(h)
	}
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}

func startServer(logger *slog.Logger, handler http.Handler, cfg config.HTTPConfig) *http.Server {
	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, timeout time.Duration, logger *slog.Logger) error {
	if server == nil {
		return nil
	}

	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}

	return nil
}

// dbPinger adapts *sql.DB to the health probe interface.
type dbPinger struct{ db *sql.DB }

func (p dbPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

func dbProbe(db *sql.DB) httpx.Pinger {
	if db == nil {
		return nil
	}
	return dbPinger{db}
}

// cachePinger adapts the Redis content cache to the health probe interface.
type cachePinger struct{ cache *data.RedisPostCache }

func (p cachePinger) Ping(ctx context.Context) error { return p.cache.Health(ctx) }

func cacheProbe(cache *data.RedisPostCache) httpx.Pinger {
	if cache == nil {
		return nil
	}
	return cachePinger{cache}
}
