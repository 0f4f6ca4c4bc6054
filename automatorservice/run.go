// Package automatorservice composes and runs the task automator HTTP service.
package automatorservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskautomator/backend/internal/api"
	"github.com/taskautomator/backend/internal/assistant"
	"github.com/taskautomator/backend/internal/completion"
	"github.com/taskautomator/backend/internal/config"
	"github.com/taskautomator/backend/internal/health"
	"github.com/taskautomator/backend/internal/logger"
)

// Run starts the task automator HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New(api.ServiceName)

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("completion_provider", cfg.CompletionProvider).
		Str("completion_model", cfg.CompletionModel).
		Msg("Task automator starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	provider, err := completion.NewProvider(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Completion provider unavailable")
		return err
	}

	// Background upstream availability monitoring. Deliberately does not gate
	// startup and never feeds the health endpoint: email analysis degrades
	// instead of failing when the provider is down.
	startHealthCheckers(ctx, cfg, log, provider)

	svc := assistant.NewService(provider, log)
	router := api.NewRouter(svc)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// startHealthCheckers starts the provider checker and the service aggregator.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, provider completion.Provider) {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	providerChecker := completion.NewProviderHealthChecker(provider, log, probeTimeout)
	go providerChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, providerChecker)
	go svcHealth.Start(ctx, interval)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
