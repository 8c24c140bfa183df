// Package entities contains core domain data structures.
package entities

// EntityKind identifies which kind of narrative entity a graph node wraps.
//
// Note: the graph-facing kind for magic systems is the all-lowercase
// "magicsystem". Collection files and settings use the camelCase tag
// "magicSystem" instead (see the parsers package); the two spellings are
// intentionally distinct and must not be unified.
type EntityKind string

const (
	KindCharacter   EntityKind = "character"
	KindLocation    EntityKind = "location"
	KindEvent       EntityKind = "event"
	KindItem        EntityKind = "item"
	KindCulture     EntityKind = "culture"
	KindEconomy     EntityKind = "economy"
	KindMagicSystem EntityKind = "magicsystem"
)

// AllKinds lists every entity kind in collection order.
var AllKinds = []EntityKind{
	KindCharacter,
	KindLocation,
	KindEvent,
	KindItem,
	KindCulture,
	KindEconomy,
	KindMagicSystem,
}

// IsValidKind checks if a string names a known entity kind.
func IsValidKind(s string) bool {
	for _, k := range AllKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}
