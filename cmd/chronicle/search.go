package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search entities semantically",
		Long:  "Finds entities whose descriptions are semantically similar to the query text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultSearchLimit, "Maximum number of results")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.SearchHandler.Handle(ctx, query, limit)
		if err != nil {
			return err
		}

		if len(result.Hits) == 0 {
			fmt.Println("No matching entities found.")
			return nil
		}

		fmt.Printf("%-8s %-12s %-25s %s\n", "SCORE", "KIND", "NAME", "DESCRIPTION")
		for _, hit := range result.Hits {
			desc := hit.Record.Description
			if len(desc) > 60 {
				desc = desc[:57] + "..."
			}
			fmt.Printf("%-8.3f %-12s %-25s %s\n", hit.Score, hit.Record.Kind, hit.Record.Name, desc)
		}

		return nil
	})
}
