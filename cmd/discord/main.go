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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RoleplayBot_Go/internal/bootstrap"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/config"
	"github.com/osse101/RoleplayBot_Go/internal/discord"
	"github.com/osse101/RoleplayBot_Go/internal/eventlog"
	"github.com/osse101/RoleplayBot_Go/internal/scheduler"
	"github.com/osse101/RoleplayBot_Go/internal/server"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
	"github.com/osse101/RoleplayBot_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, db, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	stores, err := bootstrap.InitializeStores(ctx, backend)
	if err != nil {
		closeDB(db)
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	sinks, err := bootstrap.RegisterEventHandlers(bus, db)
	if err != nil {
		closeDB(db)
		return err
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		closeDB(db)
		return err
	}
	svc, err := bootstrap.InitializeServices(cfg, stores, discord.NewPlatform(session), bus)
	if err != nil {
		closeDB(db)
		return fmt.Errorf("%s: %w", bootstrap.ErrMsgFailedInitServices, err)
	}

	bot := discord.New(session, discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, svc)
	bot.RegisterDefaultCommands()

	pool := worker.NewPool(bootstrap.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.FlushInterval, character.FlushJob{Service: svc.Characters})
	sched.Schedule(cfg.SweepInterval, shop.SweepJob{Registry: svc.Shops})
	sched.Schedule(cfg.EventCleanupInterval, eventlog.NewCleanupJob(sinks.Log, cfg.EventRetention))
	slog.Info(bootstrap.LogMsgJobsScheduled,
		"flush_interval", cfg.FlushInterval,
		"sweep_interval", cfg.SweepInterval,
		"event_retention", cfg.EventRetention)

	checks := []server.Check{{Name: "discord", Probe: bot.Ready}}
	if db != nil {
		checks = append(checks, server.Check{Name: "database", Probe: db.Ping})
	}
	srv := server.NewServer(server.Options{
		Port:           cfg.HTTPPort,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Checks:         checks,
		Reloaders: map[string]server.Reloader{
			discord.ReloadItems:      discord.TargetReloader{Services: svc, Target: discord.ReloadItems},
			discord.ReloadCharacters: discord.TargetReloader{Services: svc, Target: discord.ReloadCharacters},
			discord.ReloadBios:       discord.TargetReloader{Services: svc, Target: discord.ReloadBios},
			discord.ReloadSettings:   discord.TargetReloader{Services: svc, Target: discord.ReloadSettings},
		},
		Catalog:    svc.Catalog,
		Characters: svc.Characters,
		Events:     sinks.Log,
		Stream:     sinks.Stream,
	})
	go func() {
		slog.Info(bootstrap.LogMsgServerStarting, "port", cfg.HTTPPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(bootstrap.LogMsgServerFailed, "error", err)
		}
	}()

	components := bootstrap.ShutdownComponents{
		Server:     srv,
		Stream:     sinks.Stream,
		Scheduler:  sched,
		Pool:       pool,
		Characters: svc.Characters,
		Shops:      svc.Shops,
		DB:         db,
	}

	if err := bot.Start(); err != nil {
		shutdown(components)
		return fmt.Errorf("%s: %w", bootstrap.ErrMsgFailedStartBot, err)
	}
	components.Bot = bot

	// Commands can be registered once the session is open; a failure here
	// leaves the previously registered commands in place.
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		slog.Error(bootstrap.LogMsgCommandsFailed, "error", err)
	}

	<-ctx.Done()
	slog.Info(bootstrap.LogMsgShutdownSignal)
	shutdown(components)
	return nil
}

func shutdown(c bootstrap.ShutdownComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, c)
}

func closeDB(db *pgxpool.Pool) {
	if db != nil {
		db.Close()
	}
}
