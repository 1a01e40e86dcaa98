package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/QuestCraft_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server *server.Server
	App    *App
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Live feed hub (release streaming clients)
// 3. Relay subscriber (wait for in-flight give commands)
// 4. State store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	app := components.App
	if app == nil {
		return
	}

	app.stopHub()

	if app.Relay != nil {
		slog.Info(LogMsgShuttingDownRelay)
		if err := app.Relay.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRelayShutdownFailed, "error", err)
		}
	}

	if app.Store != nil {
		if err := app.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
