// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// Store defines the interface for relational persistence. It keeps the
// flattened entity records and the last synthesized edge snapshot for a
// world; the graph pipeline itself never touches it.
type Store interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveEntity saves or updates an entity record, keyed by (world, key).
	SaveEntity(ctx context.Context, rec *entities.EntityRecord) error

	// FindEntityByKey finds an entity record by its graph key.
	FindEntityByKey(ctx context.Context, worldID, key string) (*entities.EntityRecord, error)

	// FindEntityByName finds an entity record by normalized name.
	FindEntityByName(ctx context.Context, worldID, name string) (*entities.EntityRecord, error)

	// ListEntities lists entity records for a world with pagination.
	ListEntities(ctx context.Context, worldID string, limit, offset int) ([]entities.EntityRecord, error)

	// DeleteEntities removes all entity records for a world.
	DeleteEntities(ctx context.Context, worldID string) error

	// CountEntities returns the number of entity records for a world.
	CountEntities(ctx context.Context, worldID string) (int, error)

	// ReplaceEdges atomically replaces the stored edge snapshot for a world.
	ReplaceEdges(ctx context.Context, worldID string, edges []entities.GraphEdge) error

	// ListEdges returns the stored edge snapshot for a world.
	ListEdges(ctx context.Context, worldID string) ([]entities.StoredEdge, error)

	// CountEdges returns the number of stored edges for a world.
	CountEdges(ctx context.Context, worldID string) (int, error)
}
