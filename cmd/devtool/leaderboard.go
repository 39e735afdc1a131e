package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/bootstrap"
)

func newLeaderboardCmd(flags *globalFlags) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the richest accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				entries, err := svc.Ledger.GetLeaderboard(cmd.Context(), size)
				if err != nil {
					return err
				}
				PrintHeader("Leaderboard")
				if len(entries) == 0 {
					PrintInfo("No accounts yet")
					return nil
				}
				for _, e := range entries {
					PrintField(fmt.Sprintf("%d. %s", e.Rank, e.UserID), fmt.Sprintf("%d Crowns", e.Balance))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 10, "number of entries")
	return cmd
}
