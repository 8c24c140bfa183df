package services

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
)

// SyncOptions controls sync behavior.
type SyncOptions struct {
	Expand      bool // Insert mirror edges for symmetric relationship types
	Filter      bool // Drop redundant reciprocal edges
	SkipVectors bool // Skip embedding and vector index updates
}

// SyncResult summarizes a sync run.
type SyncResult struct {
	Entities int
	Edges    int
	Indexed  int
}

// SyncService recomputes a world's graph from its entity collections and
// persists the result: entity records and the edge snapshot into the
// relational store, entity descriptions into the vector index.
type SyncService struct {
	store    ports.Store
	vectorDB ports.VectorDB
	embedder ports.Embedder
}

// NewSyncService creates a new sync service.
func NewSyncService(store ports.Store, vectorDB ports.VectorDB, embedder ports.Embedder) *SyncService {
	return &SyncService{
		store:    store,
		vectorDB: vectorDB,
		embedder: embedder,
	}
}

// Sync runs the full pipeline over the collections and persists the output.
// The previous snapshot for the world is replaced wholesale; the pipeline
// has no incremental mode.
func (s *SyncService) Sync(ctx context.Context, worldID string, c entities.Collections, opts SyncOptions) (*SyncResult, error) {
	ix, edges := ExtractGraph(c)
	if opts.Expand {
		edges = ExpandBidirectional(edges)
	}
	if opts.Filter {
		edges = FilterRedundant(edges, ix)
	}

	if err := s.store.DeleteEntities(ctx, worldID); err != nil {
		return nil, fmt.Errorf("clearing entities: %w", err)
	}

	records := make([]entities.EntityRecord, 0, ix.Len())
	for _, node := range ix.Nodes() {
		rec := entities.NewEntityRecord(worldID, node.Entity)
		records = append(records, rec)
	}

	for i := range records {
		if err := s.store.SaveEntity(ctx, &records[i]); err != nil {
			return nil, fmt.Errorf("saving entity %s: %w", records[i].Key, err)
		}
	}

	if err := s.store.ReplaceEdges(ctx, worldID, edges); err != nil {
		return nil, fmt.Errorf("replacing edge snapshot: %w", err)
	}

	result := &SyncResult{Entities: len(records), Edges: len(edges)}

	if !opts.SkipVectors {
		indexed, err := s.indexDescriptions(ctx, records)
		if err != nil {
			return nil, err
		}
		result.Indexed = indexed
	}

	return result, nil
}

// indexDescriptions embeds and upserts every record that has a description.
func (s *SyncService) indexDescriptions(ctx context.Context, records []entities.EntityRecord) (int, error) {
	var described []entities.EntityRecord
	var texts []string
	for _, rec := range records {
		if rec.Description == "" {
			continue
		}
		described = append(described, rec)
		texts = append(texts, fmt.Sprintf("%s (%s): %s", rec.Name, rec.Kind, rec.Description))
	}
	if len(described) == 0 {
		return 0, nil
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("generating embeddings: %w", err)
	}
	for i := range described {
		described[i].Embedding = embeddings[i]
	}

	if err := s.vectorDB.SaveBatch(ctx, described); err != nil {
		return 0, fmt.Errorf("indexing entities: %w", err)
	}

	return len(described), nil
}
