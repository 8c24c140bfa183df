package entities

import "time"

// EntityRecord is the persisted, flattened form of an entity: what the
// relational store and the vector index keep between runs. Key is the
// graph node id (declared id, else name).
type EntityRecord struct {
	Key            string     `json:"key"`
	WorldID        string     `json:"world_id"`
	Kind           EntityKind `json:"kind"`
	Name           string     `json:"name"`
	NormalizedName string     `json:"normalized_name"`
	Description    string     `json:"description,omitempty"`
	Embedding      []float32  `json:"embedding,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewEntityRecord flattens an entity for persistence.
func NewEntityRecord(worldID string, e Entity) EntityRecord {
	key := e.EntityID()
	if key == "" {
		key = e.EntityName()
	}
	rec := EntityRecord{
		Key:            key,
		WorldID:        worldID,
		Kind:           e.Kind(),
		Name:           e.EntityName(),
		NormalizedName: NormalizeName(e.EntityName()),
	}
	if d, ok := e.(interface{ EntityDescription() string }); ok {
		rec.Description = d.EntityDescription()
	}
	return rec
}

// StoredEdge is a persisted edge from the last synthesized snapshot.
type StoredEdge struct {
	ID        string    `json:"id"`
	WorldID   string    `json:"world_id"`
	Edge      GraphEdge `json:"edge"`
	CreatedAt time.Time `json:"created_at"`
}
