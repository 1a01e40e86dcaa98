package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/osse101/QuestCraft_Go/internal/bootstrap"
	"github.com/osse101/QuestCraft_Go/internal/config"
	"github.com/osse101/QuestCraft_Go/internal/game"
	"github.com/osse101/QuestCraft_Go/internal/logger"
)

const (
	serviceName     = "questctl"
	quietLogLevel   = "warn"
	shutdownTimeout = 10 * time.Second

	errMsgInvalidIndexFmt = "invalid quest index %q"
)

// openService wires the game service on the configured store.
// The returned cleanup waits for pending relay calls and closes the store.
func openService(ctx context.Context) (game.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := quietLogLevel
	if verbose {
		level = cfg.LogLevel
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, cfg.LogFormat, serviceName, Version, cfg.Environment, false), os.Stderr)

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	app, err := bootstrap.BuildApp(ctx, cfg, store, bootstrap.Options{})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{App: app})
	}
	return app.Game, cleanup, nil
}

func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf(errMsgInvalidIndexFmt, arg)
	}
	return idx, nil
}
