package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/database"
)

func newCheckDBCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Check that the store opens and report its schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			PrintHeader("Checking store")

			db, err := flags.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			PrintSuccess("Store is reachable")

			provider, err := database.NewMigrator(db)
			if err != nil {
				return err
			}
			current, err := provider.GetDBVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			hasPending, err := provider.HasPending(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to check pending migrations: %w", err)
			}

			PrintField("schema version", current)
			if hasPending {
				PrintWarning("Pending migrations found, run 'devtool migrate up'")
				return nil
			}
			PrintSuccess("Schema is up to date")
			return nil
		},
	}
}
