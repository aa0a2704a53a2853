package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"example.com/storefront/internal/config"
	"example.com/storefront/internal/domain/money"
	"example.com/storefront/internal/infra/logging"
	"example.com/storefront/internal/infra/persistence/memory"
	httpapi "example.com/storefront/internal/interface/http"
	"example.com/storefront/internal/interface/tui"
	productuc "example.com/storefront/internal/usecase/product"
	storeuc "example.com/storefront/internal/usecase/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file")
	mode := fs.String("mode", "", "Rendering surface: http or tui (overrides config)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.App.Mode = config.Mode(*mode)
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.App.Mode, cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	formatter, err := money.NewFormatter(cfg.Currency.Locale, cfg.Currency.Symbol)
	if err != nil {
		return err
	}

	productRepo := memory.NewSeededProductRepository()
	productSvc := productuc.NewService(productRepo)
	storeSvc := storeuc.NewService(productRepo, logger.Named("store"))

	switch cfg.App.Mode {
	case config.ModeTUI:
		return tui.Run(ctx, storeSvc, productSvc, formatter)
	default:
		api := httpapi.NewAPI(httpapi.Dependencies{
			ProductService: productSvc,
			StoreService:   storeSvc,
			Formatter:      formatter,
			Logger:         logger.Named("http"),
		})
		return serveHTTP(ctx, cfg.App, api.Router(), logger)
	}
}

func serveHTTP(ctx context.Context, cfg config.AppConfig, handler http.Handler, logger *zap.Logger) error {
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
