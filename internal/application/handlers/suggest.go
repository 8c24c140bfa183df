package handlers

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/services"
	"github.com/emryn/chronicle/internal/infrastructure/parsers"
)

// SuggestHandler handles LLM connection suggestions.
type SuggestHandler struct {
	service *services.SuggestService
}

// NewSuggestHandler creates a new suggest handler.
func NewSuggestHandler(service *services.SuggestService) *SuggestHandler {
	return &SuggestHandler{service: service}
}

// SuggestResult contains proposed connections for an entity.
type SuggestResult struct {
	Ref         string
	Suggestions []entities.Connection
}

// Handle loads the collections under dir and proposes connections for the
// referenced entity.
func (h *SuggestHandler) Handle(ctx context.Context, dir, ref string) (*SuggestResult, error) {
	c, err := parsers.LoadCollections(dir)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}

	suggestions, err := h.service.Suggest(ctx, ref, c)
	if err != nil {
		return nil, err
	}

	return &SuggestResult{
		Ref:         ref,
		Suggestions: suggestions,
	}, nil
}
