package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/handlers"
	"binx-portfolio/pkg/logger"
	"binx-portfolio/pkg/metrics"
	"binx-portfolio/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the home page and the portfolio browser via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			if err := Serve(cfg); err != nil {
				log.Printf("Server error: %v", err)
				os.Exit(1)
			}
		},
	}
}

// Serve runs the web server until SIGINT or SIGTERM
func Serve(cfg *config.Config) error {
	log := logger.GetLogger()

	m := metrics.New()
	svc := services.InitService(cfg, services.WithMetrics(m))

	// Warm the cache so a broken gallery source shows up at startup.
	if _, err := svc.Registry(context.Background()); err != nil {
		log.Warn().Err(err).Msg("initial registry load failed")
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           handlers.NewRouter(cfg, svc, m),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		cfg.PrintServerStartMessage()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
