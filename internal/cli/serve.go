package cli

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

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/catalog_admin/internal/config"
	"github.com/Skotchmaster/catalog_admin/internal/db"
	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/hash"
	"github.com/Skotchmaster/catalog_admin/internal/httpserver"
	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/metrics"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/service"
)

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	gdb, err := db.Open(openCtx, cfg.DatabaseDriver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Error("db_close_error", "error", err)
		}
	}()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, gdb); err != nil {
			return err
		}
	}

	m := metrics.New()
	pub := events.New(cfg.KafkaBrokers)
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Error("events_close_error", "error", err)
		}
	}()
	em := events.NewEmitter(pub, m.EventPublishFailures)

	r := repo.New(gdb)
	e := httpserver.New(logger, &httpserver.Deps{
		DB:              gdb,
		Metrics:         m,
		BrandHandler:    &httpserver.BrandHTTP{Svc: &service.BrandService{Repo: r, Events: em}},
		CategoryHandler: &httpserver.CategoryHTTP{Svc: &service.CategoryService{Repo: r, Events: em}},
		ProductHandler:  &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: r, Events: em}},
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AccountService{
			Repo:   r,
			Hasher: hash.NewBcrypt(cfg.BcryptCost),
			Events: em,
		}},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalog listening", "addr", srv.Addr, "kafka", len(cfg.KafkaBrokers) > 0)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_error", "error", err)
	}

	logger.Info("catalog stopped")
	return nil
}
