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

	"github.com/osse101/QuestCraft_Go/internal/bootstrap"
	"github.com/osse101/QuestCraft_Go/internal/config"
	"github.com/osse101/QuestCraft_Go/internal/handler"
	"github.com/osse101/QuestCraft_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "questcraft: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateEnv(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.GetVersion())
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	app, err := bootstrap.BuildApp(ctx, cfg, store, bootstrap.Options{LiveFeed: true})
	if err != nil {
		_ = store.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port: cfg.Port,
		Guard: server.GuardOptions{
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			RequestLimit:   cfg.RateLimit,
			Window:         cfg.RateWindow,
		},
		Store: store,
		Game:  app.Game,
		Hub:   app.Hub,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, App: app})
	return nil
}
