package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/GrimArmory_Go/internal/bootstrap"
	"github.com/osse101/GrimArmory_Go/internal/validation"
)

func newCatalogCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and import the item catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file against its schema without touching the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.NewSchemaValidator().ValidateFile(args[0], validation.SchemaCatalog); err != nil {
				return err
			}
			PrintSuccess("%s is a valid catalog", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Import a catalog file, replacing items with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				report, err := svc.Catalog.ImportFile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, f := range report.Failures {
					PrintWarning("Rejected %q: %s", f.ItemName, f.Reason)
				}
				PrintSuccess("Imported %d items (%d rejected)", report.Imported, len(report.Failures))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog items by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withServices(cmd.Context(), func(svc *bootstrap.Services) error {
				items, err := svc.Catalog.ListItems(cmd.Context())
				if err != nil {
					return err
				}
				category := ""
				for _, item := range items {
					if item.CategoryTag != category {
						category = item.CategoryTag
						PrintHeader(category)
					}
					PrintField(item.ItemName, item.Price)
				}
				PrintInfo("%d items", len(items))
				return nil
			})
		},
	})

	return cmd
}
