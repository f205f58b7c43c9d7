package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// StartAPIServer serves the API handler until ctx is cancelled, then shuts down gracefully.
func StartAPIServer(ctx context.Context, log *slog.Logger, handler http.Handler, cfg config.HTTPConfig) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.InfoContext(ctx, "Starting API server", "address", cfg.Address)

	return run(ctx, log, srv)
}

// NewMonitoringMux exposes /metrics from reg and /healthz backed by the pinger.
func NewMonitoringMux(log *slog.Logger, reg *prometheus.Registry, pinger DBPinger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.Handle("/healthz", NewHealthChecker(pinger, log))

	return mux
}

// StartMonitoringServer serves metrics and health checks on the given port until ctx is cancelled.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	pinger DBPinger,
	port int,
) error {
	readTO := 5 * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewMonitoringMux(log, reg, pinger),
		ReadHeaderTimeout: readTO,
	}

	log.InfoContext(ctx, "Starting monitoring server", "port", port)

	return run(ctx, log, srv)
}

func run(ctx context.Context, log *slog.Logger, srv *http.Server) error {
	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server %s failed: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Server shutdown failed", "address", srv.Addr, sl.Err(err))
		return fmt.Errorf("failed to shutdown server %s: %w", srv.Addr, err)
	}

	log.InfoContext(shutdownCtx, "Server stopped", "address", srv.Addr)

	return nil
}
