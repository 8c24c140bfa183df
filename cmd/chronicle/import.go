package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emryn/chronicle/internal/application/handlers"
)

func newImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import connections from a CSV file",
		Long:  "Imports externally authored connections into the world's stored edge snapshot. Each row is resolved against the current collections; rows that do not resolve are reported and skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and resolve without saving")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, dryRun bool) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.ImportHandler.Handle(ctx, globalWorld, d.EntitiesDir, filePath, handlers.ImportOptions{
			DryRun: dryRun,
		})
		if err != nil {
			return err
		}

		if dryRun {
			fmt.Printf("Dry run: %d connections would be imported, %d skipped\n", result.Imported, result.Skipped)
		} else {
			fmt.Printf("Imported %d connections, skipped %d duplicates\n", result.Imported, result.Skipped)
		}

		for _, importErr := range result.Errors {
			fmt.Printf("  warning: %s\n", importErr.Error())
		}

		return nil
	})
}
