package entities

// MigrateStringRelationships converts a legacy list of bare name strings
// into typed relationship entries with the neutral type and no label.
func MigrateStringRelationships(names []string) []Relationship {
	rels := make([]Relationship, len(names))
	for i, name := range names {
		rels[i] = Relationship{Target: name, Type: RelationNeutral}
	}
	return rels
}

// HasTypedRelationships reports whether any entry in the list carries an
// explicit relationship type. A list that decodes entirely from legacy
// strings returns false.
func HasTypedRelationships(rels []Relationship) bool {
	for _, r := range rels {
		if r.IsTyped() {
			return true
		}
	}
	return false
}

// NormalizeRelationships upgrades legacy entries to the typed shape: every
// untyped entry becomes neutral with no label, typed entries pass through
// unchanged. The input is never mutated.
func NormalizeRelationships(rels []Relationship) []Relationship {
	out := make([]Relationship, len(rels))
	for i, r := range rels {
		if !r.IsTyped() {
			r.Type = RelationNeutral
			r.Label = ""
		}
		out[i] = r
	}
	return out
}
