package handlers

import (
	"fmt"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/services"
	"github.com/emryn/chronicle/internal/infrastructure/parsers"
)

// EntityHandler resolves entity references against collections on disk.
type EntityHandler struct{}

// NewEntityHandler creates a new entity handler.
func NewEntityHandler() *EntityHandler {
	return &EntityHandler{}
}

// EntityResult contains a resolved entity and its synthesized edges.
type EntityResult struct {
	ID          string
	Name        string
	Kind        entities.EntityKind
	Description string
	Edges       []entities.GraphEdge // Edges touching this entity, either direction
}

// Handle resolves ref against the collections under dir. The reference may
// be an id, an exact name, or a case-insensitive name.
func (h *EntityHandler) Handle(dir, ref string) (*EntityResult, error) {
	c, err := parsers.LoadCollections(dir)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}
	return h.Resolve(ref, c)
}

// Resolve resolves ref against already loaded collections.
func (h *EntityHandler) Resolve(ref string, c entities.Collections) (*EntityResult, error) {
	entity := services.ResolveEntity(ref, c.Flatten())
	if entity == nil {
		return nil, fmt.Errorf("entity not found: %s", ref)
	}

	result := &EntityResult{
		ID:   entity.EntityID(),
		Name: entity.EntityName(),
		Kind: entity.Kind(),
	}
	if b, ok := entity.(interface{ EntityDescription() string }); ok {
		result.Description = b.EntityDescription()
	}

	key := entity.EntityID()
	if key == "" {
		key = entity.EntityName()
	}
	for _, e := range services.ExtractRelationships(c) {
		if e.Source == key || e.Target == key {
			result.Edges = append(result.Edges, e)
		}
	}

	return result, nil
}
