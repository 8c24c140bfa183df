package mocks

import (
	"context"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
)

// VectorDB is a mock implementation of ports.VectorDB and
// ports.CollectionManager.
type VectorDB struct {
	Records map[string]entities.EntityRecord
	Hits    []ports.EntityHit // canned Search results
	Err     error
}

// NewVectorDB creates a new mock VectorDB.
func NewVectorDB() *VectorDB {
	return &VectorDB{Records: make(map[string]entities.EntityRecord)}
}

// EnsureCollection creates the collection if it doesn't exist.
func (m *VectorDB) EnsureCollection(_ context.Context, _ uint64) error { return m.Err }

// DeleteCollection removes the collection and all its data.
func (m *VectorDB) DeleteCollection(_ context.Context) error { return m.Err }

// Save stores an entity record with its embedding.
func (m *VectorDB) Save(_ context.Context, rec entities.EntityRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Records[rec.Key] = rec
	return nil
}

// SaveBatch stores multiple entity records.
func (m *VectorDB) SaveBatch(ctx context.Context, recs []entities.EntityRecord) error {
	for _, rec := range recs {
		if err := m.Save(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Search returns the canned hits, truncated to limit.
func (m *VectorDB) Search(_ context.Context, _ []float32, limit int) ([]ports.EntityHit, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && limit < len(m.Hits) {
		return m.Hits[:limit], nil
	}
	return m.Hits, nil
}

// Delete removes an entity record by its graph key.
func (m *VectorDB) Delete(_ context.Context, key string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Records, key)
	return nil
}
