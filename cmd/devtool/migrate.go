package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/database"
)

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage store schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := flags.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			provider, err := database.NewMigrator(db)
			if err != nil {
				return err
			}
			results, err := provider.Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if len(results) == 0 {
				PrintInfo("No pending migrations")
				return nil
			}
			for _, r := range results {
				PrintSuccess("Applied %s (%s)", r.Source.Path, r.Duration)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := flags.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			provider, err := database.NewMigrator(db)
			if err != nil {
				return err
			}
			result, err := provider.Down(cmd.Context())
			if err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			PrintSuccess("Rolled back %s", result.Source.Path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := flags.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			provider, err := database.NewMigrator(db)
			if err != nil {
				return err
			}
			statuses, err := provider.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read migration status: %w", err)
			}

			PrintHeader("Migrations")
			for _, s := range statuses {
				applied := "pending"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				PrintField(fmt.Sprintf("%05d", s.Source.Version), fmt.Sprintf("%-10s %s", s.State, applied))
			}
			return nil
		},
	})

	return cmd
}
