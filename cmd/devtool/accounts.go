package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/bootstrap"
	"github.com/osse101/GrimArmory_Go/internal/config"
)

func newAccountsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Export and import the account store",
	}

	var exportPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write every account to the export file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := exportFile(exportPath)
			if err != nil {
				return err
			}
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				n, err := svc.Backup.ExportFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				PrintSuccess("Exported %d accounts to %s", n, path)
				return nil
			})
		},
	}
	export.Flags().StringVarP(&exportPath, "file", "f", "", "export file (defaults to EXPORT_PATH)")

	var importPath string
	imp := &cobra.Command{
		Use:   "import",
		Short: "Load accounts from an export file, all or nothing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := exportFile(importPath)
			if err != nil {
				return err
			}
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				n, err := svc.Backup.ImportFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				if n == 0 {
					PrintWarning("No accounts found in %s", path)
					return nil
				}
				PrintSuccess("Imported %d accounts from %s", n, path)
				return nil
			})
		},
	}
	imp.Flags().StringVarP(&importPath, "file", "f", "", "export file (defaults to EXPORT_PATH)")

	cmd.AddCommand(export, imp)
	return cmd
}

func exportFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.ExportPath, nil
}
