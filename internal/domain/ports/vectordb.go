package ports

import (
	"context"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// EntityHit is one semantic search result.
type EntityHit struct {
	Record entities.EntityRecord `json:"record"`
	Score  float32               `json:"score"`
}

// VectorDB defines the interface for the entity-description vector index.
type VectorDB interface {
	// Save stores an entity record with its embedding.
	Save(ctx context.Context, rec entities.EntityRecord) error

	// SaveBatch stores multiple entity records.
	SaveBatch(ctx context.Context, recs []entities.EntityRecord) error

	// Search returns the entities most similar to the query embedding.
	Search(ctx context.Context, embedding []float32, limit int) ([]EntityHit, error)

	// Delete removes an entity record by its graph key.
	Delete(ctx context.Context, key string) error
}

// CollectionManager handles vector collection lifecycle operations,
// separate from VectorDB so the data interface stays focused on CRUD.
type CollectionManager interface {
	// EnsureCollection creates the collection if it doesn't exist.
	EnsureCollection(ctx context.Context, vectorSize uint64) error

	// DeleteCollection removes the collection and all its data.
	DeleteCollection(ctx context.Context) error
}
