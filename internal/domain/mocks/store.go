// Package mocks provides in-memory port implementations for tests.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// Store is a mock implementation of ports.Store.
type Store struct {
	Entities map[string]*entities.EntityRecord // keyed worldID + "/" + key
	Edges    map[string][]entities.StoredEdge  // keyed worldID
	Err      error
}

// NewStore creates a new mock Store.
func NewStore() *Store {
	return &Store{
		Entities: make(map[string]*entities.EntityRecord),
		Edges:    make(map[string][]entities.StoredEdge),
	}
}

func (m *Store) entityKey(worldID, key string) string {
	return worldID + "/" + key
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *Store) EnsureSchema(_ context.Context) error { return m.Err }

// Close closes the database connection.
func (m *Store) Close() error { return nil }

// SaveEntity saves or updates an entity record.
func (m *Store) SaveEntity(_ context.Context, rec *entities.EntityRecord) error {
	if m.Err != nil {
		return m.Err
	}
	cp := *rec
	m.Entities[m.entityKey(rec.WorldID, rec.Key)] = &cp
	return nil
}

// FindEntityByKey finds an entity record by its graph key.
func (m *Store) FindEntityByKey(_ context.Context, worldID, key string) (*entities.EntityRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entities[m.entityKey(worldID, key)], nil
}

// FindEntityByName finds an entity record by normalized name.
func (m *Store) FindEntityByName(_ context.Context, worldID, name string) (*entities.EntityRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	normalized := entities.NormalizeName(name)
	for _, rec := range m.Entities {
		if rec.WorldID == worldID && rec.NormalizedName == normalized {
			return rec, nil
		}
	}
	return nil, nil
}

// ListEntities lists entity records for a world with pagination.
func (m *Store) ListEntities(_ context.Context, worldID string, limit, offset int) ([]entities.EntityRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.EntityRecord
	for key, rec := range m.Entities {
		if strings.HasPrefix(key, worldID+"/") {
			out = append(out, *rec)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// DeleteEntities removes all entity records for a world.
func (m *Store) DeleteEntities(_ context.Context, worldID string) error {
	if m.Err != nil {
		return m.Err
	}
	for key := range m.Entities {
		if strings.HasPrefix(key, worldID+"/") {
			delete(m.Entities, key)
		}
	}
	return nil
}

// CountEntities returns the number of entity records for a world.
func (m *Store) CountEntities(ctx context.Context, worldID string) (int, error) {
	recs, err := m.ListEntities(ctx, worldID, 0, 0)
	return len(recs), err
}

// ReplaceEdges atomically replaces the stored edge snapshot for a world.
func (m *Store) ReplaceEdges(_ context.Context, worldID string, edges []entities.GraphEdge) error {
	if m.Err != nil {
		return m.Err
	}
	stored := make([]entities.StoredEdge, len(edges))
	for i, e := range edges {
		stored[i] = entities.StoredEdge{
			ID:        fmt.Sprintf("edge-%d", i),
			WorldID:   worldID,
			Edge:      e,
			CreatedAt: time.Now(),
		}
	}
	m.Edges[worldID] = stored
	return nil
}

// ListEdges returns the stored edge snapshot for a world.
func (m *Store) ListEdges(_ context.Context, worldID string) ([]entities.StoredEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Edges[worldID], nil
}

// CountEdges returns the number of stored edges for a world.
func (m *Store) CountEdges(_ context.Context, worldID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Edges[worldID]), nil
}
