package entities

import "encoding/json"

// RelationshipType defines the kind of relationship carried by an edge.
type RelationshipType string

const (
	RelationAlly         RelationshipType = "ally"
	RelationEnemy        RelationshipType = "enemy"
	RelationFamily       RelationshipType = "family"
	RelationRival        RelationshipType = "rival"
	RelationRomantic     RelationshipType = "romantic"
	RelationMentor       RelationshipType = "mentor"
	RelationAcquaintance RelationshipType = "acquaintance"
	RelationNeutral      RelationshipType = "neutral"
	RelationCustom       RelationshipType = "custom"
)

// ValidRelationshipTypes lists all relationship type strings accepted on input.
var ValidRelationshipTypes = []string{
	"ally", "enemy", "family", "rival", "romantic",
	"mentor", "acquaintance", "neutral", "custom",
}

// IsValidRelationshipType checks if a string names a known relationship type.
func IsValidRelationshipType(s string) bool {
	for _, t := range ValidRelationshipTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Connection is a typed reference from one entity to another. Any entity
// kind may carry a connections list.
type Connection struct {
	Target string           `json:"target"`
	Type   RelationshipType `json:"type"`
	Label  string           `json:"label,omitempty"`
}

// Relationship is one entry in a character's legacy relationships list.
// Legacy data stored bare name strings; those decode with an empty Type.
// Entries written by newer tooling carry an explicit type and optional label.
type Relationship struct {
	Target string           `json:"target"`
	Type   RelationshipType `json:"type,omitempty"`
	Label  string           `json:"label,omitempty"`
}

// IsTyped reports whether the entry carries an explicit relationship type,
// as opposed to a migrated bare string.
func (r Relationship) IsTyped() bool {
	return r.Type != ""
}

// UnmarshalJSON accepts either a bare name string or a typed object.
func (r *Relationship) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Relationship{Target: s}
		return nil
	}

	type alias Relationship
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Relationship(a)
	return nil
}

// ConnectionList decodes a JSON connections field, treating anything that is
// not an array as empty rather than failing the whole entity.
type ConnectionList []Connection

// UnmarshalJSON decodes the list, coercing malformed values to empty.
func (l *ConnectionList) UnmarshalJSON(data []byte) error {
	var conns []Connection
	if err := json.Unmarshal(data, &conns); err != nil {
		*l = nil
		return nil
	}
	*l = conns
	return nil
}

// RelationshipList decodes a JSON relationships field with the same
// permissive posture as ConnectionList.
type RelationshipList []Relationship

// UnmarshalJSON decodes the list, coercing malformed values to empty.
func (l *RelationshipList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}

	rels := make([]Relationship, 0, len(raw))
	for _, m := range raw {
		var r Relationship
		if err := json.Unmarshal(m, &r); err != nil {
			continue
		}
		rels = append(rels, r)
	}
	*l = rels
	return nil
}

// StringList decodes a JSON array of names, treating anything that is not an
// array as empty. Non-string elements are skipped.
type StringList []string

// UnmarshalJSON decodes the list, coercing malformed values to empty.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}

	names := make([]string, 0, len(raw))
	for _, m := range raw {
		var s string
		if err := json.Unmarshal(m, &s); err != nil {
			continue
		}
		names = append(names, s)
	}
	*l = names
	return nil
}
