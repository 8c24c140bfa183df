package services

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
)

// SuggestService proposes typed connections for an entity from its
// free-text description, using an LLM. Proposals are advisory: nothing is
// written back to the collections.
type SuggestService struct {
	llm ports.LLMClient
}

// NewSuggestService creates a new suggest service.
func NewSuggestService(llm ports.LLMClient) *SuggestService {
	return &SuggestService{llm: llm}
}

// Suggest resolves the entity reference against the collections, then asks
// the LLM for connection proposals. Proposals whose targets do not resolve
// against the node index, or whose relationship type is unknown, are
// dropped. Proposals that duplicate an existing edge are dropped as well.
func (s *SuggestService) Suggest(ctx context.Context, ref string, c entities.Collections) ([]entities.Connection, error) {
	entity := ResolveEntity(ref, c.Flatten())
	if entity == nil {
		return nil, fmt.Errorf("entity not found: %s", ref)
	}

	ix, edges := ExtractGraph(c)

	node, ok := ix.Get(keyOf(entity))
	if !ok {
		return nil, fmt.Errorf("entity not indexed: %s", ref)
	}

	known := make([]string, 0, ix.Len())
	for _, n := range ix.Nodes() {
		if n.ID != node.ID {
			known = append(known, n.Label)
		}
	}

	input := ports.SuggestionInput{
		Name:  node.Label,
		Kind:  node.Kind,
		Known: known,
	}
	if b, ok := entity.(interface{ EntityDescription() string }); ok {
		input.Description = b.EntityDescription()
	}

	proposals, err := s.llm.SuggestConnections(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("suggesting connections: %w", err)
	}

	existing := make(map[entities.EdgeKey]struct{}, len(edges))
	for _, e := range edges {
		existing[e.Key()] = struct{}{}
	}

	var out []entities.Connection
	for _, p := range proposals {
		if !entities.IsValidRelationshipType(string(p.Type)) {
			continue
		}
		target, ok := ix.Resolve(p.Target)
		if !ok {
			continue
		}
		edge := entities.GraphEdge{Source: node.ID, Target: target, Type: p.Type, Label: p.Label}
		if _, dup := existing[edge.Key()]; dup {
			continue
		}
		p.Target = target
		out = append(out, p)
	}

	return out, nil
}

// keyOf returns the graph key for an entity (declared id, else name).
func keyOf(e entities.Entity) string {
	if e.EntityID() != "" {
		return e.EntityID()
	}
	return e.EntityName()
}
