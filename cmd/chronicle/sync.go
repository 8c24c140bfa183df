package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emryn/chronicle/internal/domain/services"
)

type syncFlags struct {
	expand      bool
	filter      bool
	skipVectors bool
}

func newSyncCmd() *cobra.Command {
	var flags syncFlags

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync entity collections into storage",
		Long:  "Recomputes the world's graph from its entity collections, replaces the stored snapshot, and indexes entity descriptions for semantic search.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.expand, "expand", false, "Insert mirror edges for symmetric relationship types")
	cmd.Flags().BoolVar(&flags.filter, "filter", false, "Drop redundant reciprocal edges")
	cmd.Flags().BoolVar(&flags.skipVectors, "skip-vectors", false, "Skip embedding and vector index updates")

	return cmd
}

func runSync(cmd *cobra.Command, flags syncFlags) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.SyncHandler.Handle(ctx, globalWorld, d.EntitiesDir, services.SyncOptions{
			Expand:      flags.expand,
			Filter:      flags.filter,
			SkipVectors: flags.skipVectors,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Synced %d entities and %d edges", result.Entities, result.Edges)
		if !flags.skipVectors {
			fmt.Printf(", indexed %d descriptions", result.Indexed)
		}
		fmt.Println()

		return nil
	})
}
