package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/bootstrap"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/perk"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

// rosterMember is one entry of a roster snapshot file
type rosterMember struct {
	UserID      string   `json:"user_id"`
	DisplayName string   `json:"display_name"`
	RoleIDs     []string `json:"role_ids"`
}

func newPayoutCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payout",
		Short: "Inspect and run role perk payouts offline",
	}

	var rosterPath string
	run := &cobra.Command{
		Use:   "run",
		Short: "Pay every perk to the members of a roster snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := loadRoster(rosterPath)
			if err != nil {
				return err
			}
			roster := perk.MemberSourceFunc(func(context.Context) ([]domain.Member, error) {
				return members, nil
			})
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				report, err := svc.Perks.Payout(cmd.Context(), roster)
				if err != nil {
					return err
				}
				PrintHeader("Payout")
				for _, c := range report.Credited {
					PrintField(c.UserID, fmt.Sprintf("+%d Crowns %v", c.Amount, c.Perks))
				}
				for _, f := range report.Failures {
					PrintWarning("Failed to credit %s: %s", f.UserID, f.Error)
				}
				PrintSuccess("Credited %d Crowns to %d of %d members",
					report.TotalCredited(), len(report.Credited), report.MembersScanned)
				return nil
			})
		},
	}
	run.Flags().StringVar(&rosterPath, "roster", "", "JSON file listing members and their role IDs")
	_ = run.MarkFlagRequired("roster")

	list := &cobra.Command{
		Use:   "perks",
		Short: "List configured role perks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				perks, err := svc.Perks.ListPerks(cmd.Context())
				if err != nil {
					return err
				}
				PrintHeader("Perks")
				if len(perks) == 0 {
					PrintInfo("No perks configured")
					return nil
				}
				for _, p := range perks {
					PrintField(p.RoleID, fmt.Sprintf("%s (+%d)", p.PerkName, p.Bonus))
				}
				return nil
			})
		},
	}

	cmd.AddCommand(run, list)
	return cmd
}

func loadRoster(path string) ([]domain.Member, error) {
	var entries []rosterMember
	if err := utils.LoadJSON(path, &entries); err != nil {
		return nil, err
	}
	members := make([]domain.Member, 0, len(entries))
	for _, e := range entries {
		members = append(members, domain.Member{UserID: e.UserID, DisplayName: e.DisplayName, RoleIDs: e.RoleIDs})
	}
	return members, nil
}
