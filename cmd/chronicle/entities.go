package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emryn/chronicle/internal/domain/ports"
)

type entitiesFlags struct {
	limit  int
	offset int
}

func newEntitiesCmd() *cobra.Command {
	var flags entitiesFlags

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List synced entities",
		Long:  "Lists the entity records persisted by the last sync.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntities(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultListLimit, "Maximum number of entities to list")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "Number of entities to skip")

	return cmd
}

func runEntities(cmd *cobra.Command, flags entitiesFlags) error {
	ctx := cmd.Context()

	return withStore(func(store ports.Store) error {
		recs, err := store.ListEntities(ctx, globalWorld, flags.limit, flags.offset)
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("No entities synced. Run 'chronicle sync' first.")
			return nil
		}

		total, err := store.CountEntities(ctx, globalWorld)
		if err != nil {
			return err
		}
		edges, err := store.CountEdges(ctx, globalWorld)
		if err != nil {
			return err
		}

		fmt.Printf("%-12s %-12s %-25s %s\n", "KEY", "KIND", "NAME", "DESCRIPTION")
		for _, rec := range recs {
			desc := rec.Description
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}
			fmt.Printf("%-12s %-12s %-25s %s\n", rec.Key, rec.Kind, rec.Name, desc)
		}
		fmt.Printf("\n%d entities, %d edges\n", total, edges)

		return nil
	})
}
