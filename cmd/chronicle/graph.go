package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emryn/chronicle/internal/application/handlers"
)

type graphFlags struct {
	format string
	output string
	expand bool
	filter bool
}

func newGraphCmd() *cobra.Command {
	var flags graphFlags

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the relationship graph",
		Long:  "Synthesizes the relationship graph from the world's entity collections and exports it as JSON or Graphviz DOT.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, dot)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.expand, "expand", false, "Insert mirror edges for symmetric relationship types")
	cmd.Flags().BoolVar(&flags.filter, "filter", false, "Drop redundant reciprocal edges")

	return cmd
}

func runGraph(flags graphFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withWorldDir(func(dir string) error {
		result, err := handlers.NewGraphHandler().Handle(dir, handlers.GraphOptions{
			Expand: flags.expand,
			Filter: flags.filter,
		})
		if err != nil {
			return err
		}

		return writeGraph(result, flags.format, flags.output)
	})
}

func writeGraph(result *handlers.GraphResult, format, output string) (err error) {
	var w io.Writer
	var f *os.File

	if output != "" {
		f, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := formatGraph(w, result, format); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output != "" {
		fmt.Printf("Exported %d nodes and %d edges to %s\n", len(result.Nodes), len(result.Edges), output)
	}

	return nil
}

func formatGraph(w io.Writer, result *handlers.GraphResult, format string) error {
	switch format {
	case "json":
		return formatJSON(w, result)
	case "dot":
		return formatDOT(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, result *handlers.GraphResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func formatDOT(w io.Writer, result *handlers.GraphResult) error {
	if _, err := fmt.Fprintln(w, "digraph chronicle {"); err != nil {
		return err
	}

	for _, n := range result.Nodes {
		if _, err := fmt.Fprintf(w, "  %q [label=%q, shape=%s];\n", n.ID, n.Label, n.Shape); err != nil {
			return err
		}
	}

	for _, e := range result.Edges {
		label := string(e.Type)
		if e.Label != "" {
			label = e.Label
		}
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q, color=%q];\n", e.Source, e.Target, label, e.Color); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
