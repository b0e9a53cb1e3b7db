package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/kirusanth290/portfolio/internal/config"
	"github.com/kirusanth290/portfolio/internal/contact"
	"github.com/kirusanth290/portfolio/internal/logging"
	"github.com/kirusanth290/portfolio/internal/mail"
	"github.com/kirusanth290/portfolio/internal/server"
	"github.com/kirusanth290/portfolio/internal/telemetry"
	"github.com/kirusanth290/portfolio/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Configure and get logger
	logging.Configure(cfg.Logging())
	logger := logging.GetLogger()
	defer logger.Close()

	if err := run(cfg, logger); err != nil {
		logger.Error("%v", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	logger.Info("Starting portfolio %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.OTLPEndpoint, server.ServiceName, version.Version, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	metrics, err := telemetry.NewMetrics(otel.Meter(server.ServiceName))
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	sender, err := mail.NewResendSender(cfg.ResendAPIKey, cfg.ResendBaseURL)
	if err != nil {
		return fmt.Errorf("failed to create email sender: %w", err)
	}
	if cfg.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY is not set, contact submissions will be rejected")
	}

	service := contact.NewService(cfg.Contact(), sender, logger, metrics)

	srv, err := server.NewServer(cfg, service, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("Tracer shutdown error: %v", err)
	}

	logger.Info("Server stopped")
	return nil
}
