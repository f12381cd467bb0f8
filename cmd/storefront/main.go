package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	cartapp "storefront/internal/cart/app"
	"storefront/internal/cart/infra/sqlite"
	catalogapp "storefront/internal/catalog/app"
	"storefront/internal/catalog/infra/rest"
	cartviewapp "storefront/internal/cartview/app"
	"storefront/internal/cartview/infra/adapter"
	"storefront/internal/httpapi"
	"storefront/pkg/config"
	"storefront/pkg/logger"
	"storefront/pkg/shutdown"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront API over a remote product catalog",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(cmd.Context())
	defer cancel()

	storage, err := sqlite.Open(cfg.CartDB)
	if err != nil {
		return fmt.Errorf("open cart storage: %w", err)
	}
	defer storage.Close()

	client := rest.NewClient(cfg.UpstreamURL)
	catalogSvc := catalogapp.NewService(client)
	cartStore := cartapp.NewStore(ctx, storage)
	viewSvc := cartviewapp.NewService(
		adapter.NewCartStoreReader(cartStore),
		adapter.NewCatalogServiceReader(catalogSvc),
	)
	api := httpapi.NewServer(catalogSvc, cartStore, viewSvc, cfg.PageSize, log)

	waitForUpstream(ctx, catalogSvc, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("upstream", cfg.UpstreamURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		return server.Shutdown(stopCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", slog.Any("err", err))
		return err
	}

	log.Info("bye")
	return nil
}

// waitForUpstream probes the product API a few times before serving so a
// freshly started upstream has a moment to come up. Giving up is not
// fatal: requests surface their own upstream errors.
func waitForUpstream(ctx context.Context, catalog *catalogapp.Service, log *slog.Logger) {
	err := retry.Do(
		func() error {
			_, _, err := catalog.ListProducts(ctx, 1, 1, catalogapp.Filters{})
			return err
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Warn("product API not reachable yet, serving anyway", slog.Any("err", err))
	}
}
