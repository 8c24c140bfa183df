package handlers

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/ports"
	"github.com/emryn/chronicle/internal/domain/services"
)

// SearchHandler handles semantic entity search.
type SearchHandler struct {
	service *services.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchResult contains the result of a search.
type SearchResult struct {
	Query string
	Hits  []ports.EntityHit
}

// Handle searches for entities semantically similar to the query.
func (h *SearchHandler) Handle(ctx context.Context, query string, limit int) (*SearchResult, error) {
	hits, err := h.service.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching entities: %w", err)
	}

	return &SearchResult{
		Query: query,
		Hits:  hits,
	}, nil
}
