package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/GrimArmory_Go/internal/server"
	"github.com/osse101/GrimArmory_Go/internal/worker"
)

// Stopper is a component that stops without a context
type Stopper interface {
	Stop() error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	Bot          Stopper
	PayoutWorker *worker.PerkPayoutWorker
	Pool         *worker.Pool
	DB           io.Closer
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server and chat gateway (stop accepting new work)
// 2. Payout worker (cancel the pending timer and any running payout)
// 3. Worker pool (drain queued message grants)
// 4. Store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		} else {
			slog.Info(LogMsgServerStopped)
		}
	}

	if c.Bot != nil {
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotStopFailed, "error", err)
		}
	}

	if c.PayoutWorker != nil {
		if err := c.PayoutWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPayoutStopFailed, "error", err)
		}
	}

	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			slog.Error(LogMsgDatabaseCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
