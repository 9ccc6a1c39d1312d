package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/discord"
	"github.com/osse101/RoleplayBot_Go/internal/scheduler"
	"github.com/osse101/RoleplayBot_Go/internal/server"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
	"github.com/osse101/RoleplayBot_Go/internal/sse"
	"github.com/osse101/RoleplayBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Stream     *sse.Hub
	Bot        *discord.Bot
	Scheduler  *scheduler.Scheduler
	Pool       *worker.Pool
	Characters character.Service
	Shops      *shop.Registry
	DB         *pgxpool.Pool
}

// GracefulShutdown stops the application in order:
// 1. Event stream, HTTP server and Discord session (stop accepting new work)
// 2. Scheduler and worker pool (finish in-flight flushes and sweeps)
// 3. Final character save, then open shop sessions are dropped
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	// Open streams hold their requests until the hub closes them.
	if c.Stream != nil {
		c.Stream.Stop()
	}
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Bot != nil {
		slog.Info(LogMsgShuttingDownBot)
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotShutdownFailed, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Characters != nil {
		slog.Info(LogMsgFlushingCharacters)
		if err := c.Characters.Flush(ctx); err != nil {
			slog.Error(LogMsgFlushFailed, "error", err)
		}
	}

	if c.Shops != nil {
		c.Shops.Shutdown()
	}

	if c.DB != nil {
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
