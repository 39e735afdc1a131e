package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/bootstrap"
	"github.com/osse101/GrimArmory_Go/internal/config"
	"github.com/osse101/GrimArmory_Go/internal/database"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand
type globalFlags struct {
	dbPath string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "devtool",
		Short:         "Maintenance tooling for the Grim Armory store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "path to the SQLite store (defaults to DB_PATH)")

	root.AddCommand(
		newCheckDBCmd(flags),
		newMigrateCmd(flags),
		newCatalogCmd(flags),
		newAccountsCmd(flags),
		newLeaderboardCmd(flags),
		newPayoutCmd(flags),
	)
	return root
}

// resolveDBPath prefers the --db flag over the configured store path
func (f *globalFlags) resolveDBPath() (string, error) {
	if f.dbPath != "" {
		return f.dbPath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.DBPath, nil
}

// openStore opens the store without applying migrations
func (f *globalFlags) openStore(ctx context.Context) (*sqlx.DB, error) {
	path, err := f.resolveDBPath()
	if err != nil {
		return nil, err
	}
	return database.Open(ctx, path)
}

// withServices opens and migrates the store, then hands fn the wired services
func (f *globalFlags) withServices(ctx context.Context, fn func(*bootstrap.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.dbPath != "" {
		cfg.DBPath = f.dbPath
	}

	db, err := database.OpenAndMigrate(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	repos := bootstrap.InitializeRepositories(db)
	return fn(bootstrap.InitializeServices(cfg, repos))
}
