package services

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
	"github.com/emryn/chronicle/internal/infrastructure/parsers"
)

// ImportError describes why one row was rejected during import.
type ImportError struct {
	Line    int
	Message string
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of a connection import.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportService merges externally authored connection lists into a world's
// stored edge snapshot. Rows resolve against the current collections with
// the same policy the synthesizer uses; rows that do not resolve are
// reported, not fatal.
type ImportService struct {
	store ports.Store
}

// NewImportService creates a new import service.
func NewImportService(store ports.Store) *ImportService {
	return &ImportService{store: store}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate and resolve without saving
}

// ImportConnections resolves each row against the collections and appends
// the resulting edges to the stored snapshot, skipping rows that duplicate
// an edge already present.
func (s *ImportService) ImportConnections(
	ctx context.Context,
	worldID string,
	rows []parsers.ConnectionRecord,
	c entities.Collections,
	opts ImportOptions,
) (*ImportResult, error) {
	ix := BuildNodeIndex(c)

	stored, err := s.store.ListEdges(ctx, worldID)
	if err != nil {
		return nil, fmt.Errorf("listing stored edges: %w", err)
	}

	edges := make([]entities.GraphEdge, 0, len(stored)+len(rows))
	seen := make(map[entities.EdgeKey]struct{}, len(stored))
	for _, se := range stored {
		edges = append(edges, se.Edge)
		seen[se.Edge.Key()] = struct{}{}
	}

	result := &ImportResult{}
	for _, row := range rows {
		source, ok := ix.Resolve(row.Source)
		if !ok {
			result.Errors = append(result.Errors, ImportError{
				Line:    row.LineNum,
				Message: fmt.Sprintf("unresolvable source %q", row.Source),
			})
			continue
		}
		target, ok := ix.Resolve(row.Connection.Target)
		if !ok {
			result.Errors = append(result.Errors, ImportError{
				Line:    row.LineNum,
				Message: fmt.Sprintf("unresolvable target %q", row.Connection.Target),
			})
			continue
		}

		relType := row.Connection.Type
		if relType == "" {
			relType = entities.RelationNeutral
		}
		edge := entities.GraphEdge{Source: source, Target: target, Type: relType, Label: row.Connection.Label}
		if _, dup := seen[edge.Key()]; dup {
			result.Skipped++
			continue
		}
		seen[edge.Key()] = struct{}{}
		edges = append(edges, edge)
		result.Imported++
	}

	if opts.DryRun || result.Imported == 0 {
		return result, nil
	}

	if err := s.store.ReplaceEdges(ctx, worldID, edges); err != nil {
		return nil, fmt.Errorf("saving edge snapshot: %w", err)
	}

	return result, nil
}
