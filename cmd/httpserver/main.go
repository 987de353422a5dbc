package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"moviefinder/httpserver"
	"moviefinder/movie"
	"moviefinder/omdb"
	"moviefinder/pkg/config"
	"moviefinder/pkg/logger"
	"moviefinder/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	slog.SetDefault(logger.New("INFO"))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	if cfg.OMDB.APIKey == "" {
		slog.Warn("OMDB_API_KEY is empty, every search will fail upstream")
	}

	provider := omdb.NewClient(omdb.Options{
		BaseURL: cfg.OMDB.BaseURL,
		APIKey:  cfg.OMDB.APIKey,
		Timeout: cfg.OMDB.Timeout,
	})

	server := httpserver.Default(cfg)
	server.Logger = log
	server.MovieService = movie.NewUsecase(provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening to port", "port", cfg.Port)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			sentry.Fatal(err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}
}
