package ports

import (
	"context"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// SuggestionInput describes the entity an LLM should propose connections
// for. Known lists the names of every other entity in the world so the
// model only suggests targets that actually exist.
type SuggestionInput struct {
	Name        string
	Kind        entities.EntityKind
	Description string
	Known       []string
}

// LLMClient defines the interface for LLM operations.
type LLMClient interface {
	// SuggestConnections proposes typed connections for an entity based on
	// its free-text description.
	SuggestConnections(ctx context.Context, input SuggestionInput) ([]entities.Connection, error)
}
