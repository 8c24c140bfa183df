package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest REF",
		Short: "Suggest connections for an entity",
		Long:  "Asks the LLM to propose typed connections for an entity based on its description. Proposals are advisory; nothing is written back to the collections.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args[0])
		},
	}

	return cmd
}

func runSuggest(cmd *cobra.Command, ref string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		result, err := d.SuggestHandler.Handle(ctx, d.EntitiesDir, ref)
		if err != nil {
			return err
		}

		if len(result.Suggestions) == 0 {
			fmt.Println("No connection suggestions.")
			return nil
		}

		fmt.Printf("Suggested connections for %s:\n", ref)
		for _, s := range result.Suggestions {
			if s.Label != "" {
				fmt.Printf("  -> %s (%s: %s)\n", s.Target, s.Type, s.Label)
			} else {
				fmt.Printf("  -> %s (%s)\n", s.Target, s.Type)
			}
		}

		return nil
	})
}
