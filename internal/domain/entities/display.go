package entities

// Presentation constants for graph rendering. These are stable lookup
// tables; renderers depend on the exact values, so changes here are
// breaking for visual compatibility.

// relationshipColors maps each relationship type to its display color.
var relationshipColors = map[RelationshipType]string{
	RelationAlly:         "#4caf50",
	RelationEnemy:        "#f44336",
	RelationFamily:       "#2196f3",
	RelationRival:        "#ff9800",
	RelationRomantic:     "#e91e63",
	RelationMentor:       "#9c27b0",
	RelationAcquaintance: "#9e9e9e",
	RelationNeutral:      "#607d8b",
	RelationCustom:       "#795548",
}

// entityShapes maps each entity kind to its node shape.
var entityShapes = map[EntityKind]string{
	KindCharacter:   "ellipse",
	KindLocation:    "box",
	KindEvent:       "diamond",
	KindItem:        "hexagon",
	KindCulture:     "octagon",
	KindEconomy:     "parallelogram",
	KindMagicSystem: "star",
}

// RelationshipColor returns the display color for a relationship type.
// Unknown types fall back to the neutral color.
func RelationshipColor(t RelationshipType) string {
	if c, ok := relationshipColors[t]; ok {
		return c
	}
	return relationshipColors[RelationNeutral]
}

// EntityShape returns the node shape for an entity kind. Unknown kinds
// fall back to ellipse.
func EntityShape(k EntityKind) string {
	if s, ok := entityShapes[k]; ok {
		return s
	}
	return "ellipse"
}
