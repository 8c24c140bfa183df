package services

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/ports"
)

// DefaultSearchLimit is the default number of results to return.
const DefaultSearchLimit = 10

// SearchService handles semantic entity search.
type SearchService struct {
	embedder ports.Embedder
	vectorDB ports.VectorDB
}

// NewSearchService creates a new search service.
func NewSearchService(embedder ports.Embedder, vectorDB ports.VectorDB) *SearchService {
	return &SearchService{
		embedder: embedder,
		vectorDB: vectorDB,
	}
}

// Search finds entities whose descriptions are semantically similar to the
// query text.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]ports.EntityHit, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("generating query embedding: %w", err)
	}

	hits, err := s.vectorDB.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching entities: %w", err)
	}

	return hits, nil
}
