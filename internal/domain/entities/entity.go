package entities

import "strings"

// Entity is implemented by every narrative entity kind. It exposes just
// enough for reference resolution; graph synthesis dispatches on the
// concrete type instead of inspecting fields dynamically.
type Entity interface {
	EntityID() string
	EntityName() string
	Kind() EntityKind
}

// Base carries the fields shared by every entity kind.
type Base struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Connections ConnectionList `json:"connections,omitempty"`
}

// EntityID returns the declared identifier, which may be empty.
func (b Base) EntityID() string { return b.ID }

// EntityName returns the display name.
func (b Base) EntityName() string { return b.Name }

// EntityDescription returns the free-text description, which may be empty.
func (b Base) EntityDescription() string { return b.Description }

// Key returns the identifier used for graph nodes and index lookups:
// the declared id if present, else the name.
func (b Base) Key() string {
	if b.ID != "" {
		return b.ID
	}
	return b.Name
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Character is a person or being in the story world.
type Character struct {
	Base
	Relationships RelationshipList `json:"relationships,omitempty"`
	Locations     StringList       `json:"locations,omitempty"`
	Events        StringList       `json:"events,omitempty"`
	OwnedItems    StringList       `json:"ownedItems,omitempty"`
	Cultures      StringList       `json:"cultures,omitempty"`
	MagicSystems  StringList       `json:"magicSystems,omitempty"`
}

// Kind returns KindCharacter.
func (Character) Kind() EntityKind { return KindCharacter }

// Location is a place, region, or structure.
type Location struct {
	Base
	ParentLocation string `json:"parentLocation,omitempty"`
}

// Kind returns KindLocation.
func (Location) Kind() EntityKind { return KindLocation }

// Event is an occurrence involving other entities.
type Event struct {
	Base
	Characters   StringList `json:"characters,omitempty"`
	Location     string     `json:"location,omitempty"`
	Items        StringList `json:"items,omitempty"`
	Cultures     StringList `json:"cultures,omitempty"`
	MagicSystems StringList `json:"magicSystems,omitempty"`
}

// Kind returns KindEvent.
func (Event) Kind() EntityKind { return KindEvent }

// Item is an object that can be owned and placed.
type Item struct {
	Base
	CurrentOwner     string     `json:"currentOwner,omitempty"`
	CurrentLocation  string     `json:"currentLocation,omitempty"`
	AssociatedEvents StringList `json:"associatedEvents,omitempty"`
}

// Kind returns KindItem.
func (Item) Kind() EntityKind { return KindItem }

// Culture is a people, faction, or tradition.
type Culture struct {
	Base
	LinkedLocations  StringList `json:"linkedLocations,omitempty"`
	LinkedCharacters StringList `json:"linkedCharacters,omitempty"`
	LinkedEvents     StringList `json:"linkedEvents,omitempty"`
}

// Kind returns KindCulture.
func (Culture) Kind() EntityKind { return KindCulture }

// Economy is a trade system or market.
type Economy struct {
	Base
	LinkedLocations StringList `json:"linkedLocations,omitempty"`
}

// Kind returns KindEconomy.
func (Economy) Kind() EntityKind { return KindEconomy }

// MagicSystem is a system of magic or supernatural rules.
type MagicSystem struct {
	Base
	LinkedLocations  StringList `json:"linkedLocations,omitempty"`
	LinkedCharacters StringList `json:"linkedCharacters,omitempty"`
	LinkedEvents     StringList `json:"linkedEvents,omitempty"`
	LinkedItems      StringList `json:"linkedItems,omitempty"`
}

// Kind returns KindMagicSystem.
func (MagicSystem) Kind() EntityKind { return KindMagicSystem }

// Collections is a snapshot of every entity collection in a world. The graph
// pipeline never mutates it; all derived structures are freshly allocated.
type Collections struct {
	Characters   []Character   `json:"characters,omitempty"`
	Locations    []Location    `json:"locations,omitempty"`
	Events       []Event       `json:"events,omitempty"`
	Items        []Item        `json:"items,omitempty"`
	Cultures     []Culture     `json:"cultures,omitempty"`
	Economies    []Economy     `json:"economies,omitempty"`
	MagicSystems []MagicSystem `json:"magicSystems,omitempty"`
}

// Flatten returns every entity in collection order as the Entity interface,
// for callers that work across kinds (lookup, persistence, search).
func (c Collections) Flatten() []Entity {
	out := make([]Entity, 0, c.Len())
	for _, e := range c.Characters {
		out = append(out, e)
	}
	for _, e := range c.Locations {
		out = append(out, e)
	}
	for _, e := range c.Events {
		out = append(out, e)
	}
	for _, e := range c.Items {
		out = append(out, e)
	}
	for _, e := range c.Cultures {
		out = append(out, e)
	}
	for _, e := range c.Economies {
		out = append(out, e)
	}
	for _, e := range c.MagicSystems {
		out = append(out, e)
	}
	return out
}

// Len returns the total number of entities across all collections.
func (c Collections) Len() int {
	return len(c.Characters) + len(c.Locations) + len(c.Events) +
		len(c.Items) + len(c.Cultures) + len(c.Economies) + len(c.MagicSystems)
}
