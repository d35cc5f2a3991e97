package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/marketbridge/api/openapi"
	"github.com/donaldgifford/marketbridge/internal/api/handlers"
	"github.com/donaldgifford/marketbridge/internal/api/middleware"
	"github.com/donaldgifford/marketbridge/internal/bridge"
	"github.com/donaldgifford/marketbridge/internal/config"
	"github.com/donaldgifford/marketbridge/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: "Serve the marketplace API over HTTP with health probes, Prometheus\n" +
			"metrics on /metrics and the OpenAPI document under /swagger.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	b, err := newBridge(cfg, log)
	if err != nil {
		return err
	}

	e := newServer(cfg, b, log)
	addr := cfg.Server.Addr()
	log.Info("starting server",
		"addr", addr,
		"marketplaces", b.Marketplaces(),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer wires the Echo instance: middleware, probes, metrics, the huma
// API and its OpenAPI document.
func newServer(cfg *config.Config, b *bridge.Bridge, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(
		middleware.RequestLog(log),
		middleware.Recovery(log),
		middleware.Metrics(),
	)

	health := handlers.NewHealthHandler(b)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("marketbridge API", Version))
	handlers.RegisterMarketplaceRoutes(api, handlers.NewMarketplacesHandler(b))
	openapi.RegisterRoutes(e, api)

	return e
}
