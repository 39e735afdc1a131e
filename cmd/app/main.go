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

	"github.com/osse101/GrimArmory_Go/internal/bootstrap"
	"github.com/osse101/GrimArmory_Go/internal/config"
	"github.com/osse101/GrimArmory_Go/internal/database"
	"github.com/osse101/GrimArmory_Go/internal/discord"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/scheduler"
	"github.com/osse101/GrimArmory_Go/internal/server"
	"github.com/osse101/GrimArmory_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateForBot(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.OpenAndMigrate(ctx, cfg.DBPath)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(db)
	services := bootstrap.InitializeServices(cfg, repos)

	if err := bootstrap.SyncCatalog(ctx, services.Catalog, cfg.CatalogPath); err != nil {
		db.Close()
		return err
	}
	if cfg.ImportAccountsOnStart {
		if err := bootstrap.ImportAccounts(ctx, services.Backup, cfg.ExportPath); err != nil {
			db.Close()
			return err
		}
	}

	loc, err := cfg.PayoutLocation()
	if err != nil {
		db.Close()
		return err
	}
	schedule, err := scheduler.Parse(cfg.PayoutSchedule, loc)
	if err != nil {
		db.Close()
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	// The payout worker and the bot reference each other: the bot triggers
	// manual payouts and the payout reads the bot's member roster.
	var bot *discord.Bot
	payoutWorker := worker.NewPerkPayoutWorker(func(ctx context.Context) (*domain.PayoutReport, error) {
		return services.Perks.Payout(ctx, bot.Roster())
	}, schedule)

	bot, err = discord.New(discord.Config{
		Token:              cfg.DiscordToken,
		GuildID:            cfg.GuildID,
		Prefix:             cfg.Prefix,
		ExportPath:         cfg.ExportPath,
		InteractionTimeout: cfg.InteractionTimeout,
	}, discord.Services{
		Ledger:     services.Ledger,
		Inventory:  services.Inventory,
		Profile:    services.Profile,
		Catalog:    services.Catalog,
		Shop:       services.Shop,
		Perks:      services.Perks,
		Backup:     services.Backup,
		Payout:     payoutWorker,
		Jobs:       pool,
		Authorizer: services.Authorizer,
	})
	if err != nil {
		pool.Stop()
		db.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		Port:           cfg.HTTPPort,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Deps{
		DB:          db,
		Leaderboard: services.Ledger,
		Accounts:    repos.Accounts,
		Catalog:     services.Catalog,
	})

	components := bootstrap.ShutdownComponents{
		Server:       srv,
		PayoutWorker: payoutWorker,
		Pool:         pool,
		DB:           db,
	}

	if err := bot.Start(); err != nil {
		shutdown(components)
		return err
	}
	components.Bot = bot
	payoutWorker.Start()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdown(components)
		return nil
	case err := <-serverErr:
		shutdown(components)
		return fmt.Errorf("http server: %w", err)
	}
}

func shutdown(components bootstrap.ShutdownComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, components)
}
