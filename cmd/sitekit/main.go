// sitekit serves multi-tenant dental clinic sites: tenant data, booking
// intake, and an admin API. Run with no arguments to start the server, or
// `sitekit admin <subcommand>` for management tasks.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/dentalops/sitekit/internal/adapter/http"
	natsadapter "github.com/dentalops/sitekit/internal/adapter/nats"
	obs "github.com/dentalops/sitekit/internal/adapter/otel"
	"github.com/dentalops/sitekit/internal/adapter/postgres"
	"github.com/dentalops/sitekit/internal/adapter/ristretto"
	"github.com/dentalops/sitekit/internal/adapter/ws"
	"github.com/dentalops/sitekit/internal/config"
	"github.com/dentalops/sitekit/internal/logger"
	"github.com/dentalops/sitekit/internal/middleware"
	"github.com/dentalops/sitekit/internal/resilience"
	"github.com/dentalops/sitekit/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if len(os.Args) > 1 && os.Args[1] == "admin" {
		if err := runAdmin(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(logger.New(cfg.Logging))
	slog.Info("starting sitekit", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := obs.Setup(ctx, cfg.Logging.Service, cfg.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)

	queue, err := natsadapter.Connect(ctx, cfg.NATS.URL)
	if err != nil {
		return fmt.Errorf("nats: %w", err)
	}
	defer func() { _ = queue.Close() }()

	siteCache, err := ristretto.New(cfg.Cache.MaxSizeMB << 20)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer siteCache.Close()

	metrics, err := obs.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	hub := ws.NewHub()
	breaker := resilience.NewBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.Timeout)

	sites := service.NewSiteService(store, siteCache, *cfg, metrics)
	appointments := service.NewAppointmentService(store, queue, hub, breaker, metrics)
	clinics := service.NewClinicService(store, sites, queue, hub)

	handler := httpadapter.NewHandler(sites, appointments, clinics, hub, pool, cfg.Maps.APIKey)

	submitLimiter := middleware.NewRateLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst)
	stopCleanup := submitLimiter.StartCleanup(10*time.Minute, 30*time.Minute)
	defer stopCleanup()

	router := httpadapter.NewRouter(*cfg, handler, submitLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
