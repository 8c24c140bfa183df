package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emryn/chronicle/internal/application/handlers"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve REF",
		Short: "Resolve an entity reference",
		Long:  "Resolves an id or name (exact first, then case-insensitive) against the world's collections and shows the entity with its synthesized edges.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0])
		},
	}

	return cmd
}

func runResolve(ref string) error {
	return withWorldDir(func(dir string) error {
		result, err := handlers.NewEntityHandler().Handle(dir, ref)
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", result.Name)
		fmt.Printf("Kind:        %s\n", result.Kind)
		if result.ID != "" {
			fmt.Printf("ID:          %s\n", result.ID)
		}
		if result.Description != "" {
			fmt.Printf("Description: %s\n", result.Description)
		}

		if len(result.Edges) == 0 {
			return nil
		}

		fmt.Println("Edges:")
		for _, e := range result.Edges {
			if e.Label != "" {
				fmt.Printf("  %s -> %s (%s: %s)\n", e.Source, e.Target, e.Type, e.Label)
			} else {
				fmt.Printf("  %s -> %s (%s)\n", e.Source, e.Target, e.Type)
			}
		}

		return nil
	})
}
