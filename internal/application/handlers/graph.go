// Package handlers wires entity collections on disk to the domain services.
package handlers

import (
	"fmt"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/services"
	"github.com/emryn/chronicle/internal/infrastructure/parsers"
)

// GraphHandler builds renderable graphs from entity collections.
type GraphHandler struct{}

// NewGraphHandler creates a new graph handler.
func NewGraphHandler() *GraphHandler {
	return &GraphHandler{}
}

// GraphOptions controls graph construction.
type GraphOptions struct {
	Expand bool // Insert mirror edges for symmetric relationship types
	Filter bool // Drop redundant reciprocal edges
}

// NodeView is a graph node annotated for display.
type NodeView struct {
	ID    string              `json:"id"`
	Label string              `json:"label"`
	Kind  entities.EntityKind `json:"type"`
	Shape string              `json:"shape"`
}

// EdgeView is a graph edge annotated for display.
type EdgeView struct {
	Source string                    `json:"source"`
	Target string                    `json:"target"`
	Type   entities.RelationshipType `json:"relationshipType"`
	Label  string                    `json:"label,omitempty"`
	Color  string                    `json:"color"`
}

// GraphResult contains the rendered graph.
type GraphResult struct {
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`
}

// Handle loads the collections under dir and synthesizes the display graph.
func (h *GraphHandler) Handle(dir string, opts GraphOptions) (*GraphResult, error) {
	c, err := parsers.LoadCollections(dir)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}
	return h.Build(c, opts), nil
}

// Build synthesizes the display graph from already loaded collections.
func (h *GraphHandler) Build(c entities.Collections, opts GraphOptions) *GraphResult {
	ix, edges := services.ExtractGraph(c)
	if opts.Expand {
		edges = services.ExpandBidirectional(edges)
	}
	if opts.Filter {
		edges = services.FilterRedundant(edges, ix)
	}

	result := &GraphResult{
		Nodes: make([]NodeView, 0, ix.Len()),
		Edges: make([]EdgeView, 0, len(edges)),
	}
	for _, node := range ix.Nodes() {
		result.Nodes = append(result.Nodes, NodeView{
			ID:    node.ID,
			Label: node.Label,
			Kind:  node.Kind,
			Shape: entities.EntityShape(node.Kind),
		})
	}
	for _, e := range edges {
		result.Edges = append(result.Edges, EdgeView{
			Source: e.Source,
			Target: e.Target,
			Type:   e.Type,
			Label:  e.Label,
			Color:  entities.RelationshipColor(e.Type),
		})
	}
	return result
}
