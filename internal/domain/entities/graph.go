package entities

// GraphNode is a canonical node descriptor for one entity. ID is the
// entity's declared id if present, else its display name.
type GraphNode struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Kind   EntityKind `json:"type"`
	Entity Entity     `json:"-"`
}

// GraphEdge is a directed, typed edge between two graph nodes. Label is a
// free-text qualifier ("owns", "located at"); empty means unlabeled, and it
// participates in edge identity alongside the endpoints and type.
type GraphEdge struct {
	Source string           `json:"source"`
	Target string           `json:"target"`
	Type   RelationshipType `json:"relationshipType"`
	Label  string           `json:"label,omitempty"`
}

// EdgeKey is the comparable identity of an edge. Two edges are the same
// edge iff their keys are equal.
type EdgeKey struct {
	Source string
	Target string
	Type   RelationshipType
	Label  string
}

// Key returns the edge's identity.
func (e GraphEdge) Key() EdgeKey {
	return EdgeKey{Source: e.Source, Target: e.Target, Type: e.Type, Label: e.Label}
}

// Reverse returns the mirror edge with source and target swapped.
func (e GraphEdge) Reverse() GraphEdge {
	return GraphEdge{Source: e.Target, Target: e.Source, Type: e.Type, Label: e.Label}
}
