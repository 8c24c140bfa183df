// Package services contains domain business logic.
package services

import (
	"strings"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// NodeIndex maps entity keys (declared id, else name) to graph nodes. It
// preserves the insertion order of the source collections so that
// case-insensitive resolution is deterministic.
//
// Callers must keep ids and names unique within a world. On a key collision
// the later entity silently overwrites the earlier node (last-write-wins);
// this is not enforced at runtime.
type NodeIndex struct {
	nodes map[string]*entities.GraphNode
	order []string
}

// NewNodeIndex returns an empty index.
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{nodes: make(map[string]*entities.GraphNode)}
}

// Add inserts a node under its id. An existing node under the same key is
// replaced in place, keeping its original position in iteration order.
func (ix *NodeIndex) Add(node *entities.GraphNode) {
	if _, exists := ix.nodes[node.ID]; !exists {
		ix.order = append(ix.order, node.ID)
	}
	ix.nodes[node.ID] = node
}

// Get returns the node stored under the exact key.
func (ix *NodeIndex) Get(key string) (*entities.GraphNode, bool) {
	n, ok := ix.nodes[key]
	return n, ok
}

// Len returns the number of nodes in the index.
func (ix *NodeIndex) Len() int {
	return len(ix.nodes)
}

// Nodes returns all nodes in insertion order.
func (ix *NodeIndex) Nodes() []*entities.GraphNode {
	out := make([]*entities.GraphNode, 0, len(ix.order))
	for _, key := range ix.order {
		out = append(out, ix.nodes[key])
	}
	return out
}

// Resolve maps a loose reference (an id or a name) to a node id. An exact
// key match wins; otherwise the labels are scanned case-insensitively in
// insertion order and the first match wins. The second return value is
// false when nothing matches, in which case the caller drops the edge
// silently rather than failing.
func (ix *NodeIndex) Resolve(ref string) (string, bool) {
	if _, ok := ix.nodes[ref]; ok {
		return ref, true
	}
	for _, key := range ix.order {
		if strings.EqualFold(ix.nodes[key].Label, ref) {
			return ix.nodes[key].ID, true
		}
	}
	return "", false
}

// kindOf classifies an edge endpoint by entity kind. The empty string means
// the endpoint is not in the index.
func (ix *NodeIndex) kindOf(key string) entities.EntityKind {
	if n, ok := ix.nodes[key]; ok {
		return n.Kind
	}
	return ""
}

// BuildNodeIndex builds the lookup from entity key to canonical node
// descriptor across all seven entity kinds, in collection order.
func BuildNodeIndex(c entities.Collections) *NodeIndex {
	ix := NewNodeIndex()
	for _, e := range c.Characters {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindCharacter, Entity: e})
	}
	for _, e := range c.Locations {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindLocation, Entity: e})
	}
	for _, e := range c.Events {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindEvent, Entity: e})
	}
	for _, e := range c.Items {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindItem, Entity: e})
	}
	for _, e := range c.Cultures {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindCulture, Entity: e})
	}
	for _, e := range c.Economies {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindEconomy, Entity: e})
	}
	for _, e := range c.MagicSystems {
		ix.Add(&entities.GraphNode{ID: e.Key(), Label: e.Name, Kind: entities.KindMagicSystem, Entity: e})
	}
	return ix
}

// edgeSet accumulates edges in discovery order while rejecting duplicates
// under full edge identity (source, target, type, label).
type edgeSet struct {
	ix    *NodeIndex
	edges []entities.GraphEdge
	seen  map[entities.EdgeKey]struct{}
}

func newEdgeSet(ix *NodeIndex) *edgeSet {
	return &edgeSet{ix: ix, seen: make(map[entities.EdgeKey]struct{})}
}

// add resolves the target reference and appends the edge unless the
// reference is unresolvable or the edge already exists.
func (s *edgeSet) add(source, targetRef string, relType entities.RelationshipType, label string) {
	target, ok := s.ix.Resolve(targetRef)
	if !ok {
		return
	}
	if relType == "" {
		relType = entities.RelationNeutral
	}
	edge := entities.GraphEdge{Source: source, Target: target, Type: relType, Label: label}
	if _, dup := s.seen[edge.Key()]; dup {
		return
	}
	s.seen[edge.Key()] = struct{}{}
	s.edges = append(s.edges, edge)
}

// addAll emits one neutral edge per referenced name with a fixed label.
func (s *edgeSet) addAll(source string, refs []string, label string) {
	for _, ref := range refs {
		s.add(source, ref, entities.RelationNeutral, label)
	}
}

// addScalar emits a single neutral edge when the scalar reference is set.
func (s *edgeSet) addScalar(source, ref, label string) {
	if ref == "" {
		return
	}
	s.add(source, ref, entities.RelationNeutral, label)
}

// addConnections emits edges for an entity's generic typed connections.
func (s *edgeSet) addConnections(source string, conns []entities.Connection) {
	for _, c := range conns {
		s.add(source, c.Target, c.Type, c.Label)
	}
}

// ExtractGraph builds the node index and synthesizes the full deduplicated
// edge list from every entity collection. Edges appear in discovery order:
// per entity, generic connections first, then (characters only) legacy
// relationships, then the implicit per-field relations.
func ExtractGraph(c entities.Collections) (*NodeIndex, []entities.GraphEdge) {
	ix := BuildNodeIndex(c)
	set := newEdgeSet(ix)

	for _, e := range c.Characters {
		src := e.Key()
		set.addConnections(src, e.Connections)
		for _, r := range e.Relationships {
			set.add(src, r.Target, r.Type, r.Label)
		}
		set.addAll(src, e.Locations, "associated")
		set.addAll(src, e.Events, "involved")
		set.addAll(src, e.OwnedItems, "owns")
		set.addAll(src, e.Cultures, "belongs to")
		set.addAll(src, e.MagicSystems, "uses")
	}
	for _, e := range c.Locations {
		src := e.Key()
		set.addConnections(src, e.Connections)
		set.addScalar(src, e.ParentLocation, "within")
	}
	for _, e := range c.Events {
		src := e.Key()
		set.addConnections(src, e.Connections)
		set.addAll(src, e.Characters, "involved")
		set.addScalar(src, e.Location, "occurred at")
		set.addAll(src, e.Items, "involves")
		set.addAll(src, e.Cultures, "involves")
		set.addAll(src, e.MagicSystems, "involves")
	}
	for _, e := range c.Items {
		src := e.Key()
		set.addConnections(src, e.Connections)
		set.addScalar(src, e.CurrentOwner, "owned by")
		set.addScalar(src, e.CurrentLocation, "located at")
		set.addAll(src, e.AssociatedEvents, "featured in")
	}
	for _, e := range c.Cultures {
		src := e.Key()
		set.addConnections(src, e.Connections)
		set.addAll(src, e.LinkedLocations, "present in")
		set.addAll(src, e.LinkedCharacters, "includes")
		set.addAll(src, e.LinkedEvents, "related to")
	}
	for _, e := range c.Economies {
		src := e.Key()
		set.addConnections(src, e.Connections)
		set.addAll(src, e.LinkedLocations, "active in")
	}
	for _, e := range c.MagicSystems {
		src := e.Key()
		set.addConnections(src, e.Connections)
		set.addAll(src, e.LinkedLocations, "practiced in")
		set.addAll(src, e.LinkedCharacters, "used by")
		set.addAll(src, e.LinkedEvents, "featured in")
		set.addAll(src, e.LinkedItems, "associated with")
	}

	return ix, set.edges
}

// ExtractRelationships is the primary entry point: the composed index
// builder and edge synthesizer.
func ExtractRelationships(c entities.Collections) []entities.GraphEdge {
	_, edges := ExtractGraph(c)
	return edges
}

// symmetricTypes are the relationship kinds that are inherently mutual.
var symmetricTypes = map[entities.RelationshipType]bool{
	entities.RelationFamily:   true,
	entities.RelationAlly:     true,
	entities.RelationRival:    true,
	entities.RelationRomantic: true,
}

// ExpandBidirectional inserts the mirror of every symmetric edge unless an
// edge with that exact identity already exists. Idempotent; the input slice
// is never mutated.
func ExpandBidirectional(edges []entities.GraphEdge) []entities.GraphEdge {
	out := make([]entities.GraphEdge, 0, len(edges))
	seen := make(map[entities.EdgeKey]struct{}, len(edges))
	for _, e := range edges {
		out = append(out, e)
		seen[e.Key()] = struct{}{}
	}
	for _, e := range edges {
		if !symmetricTypes[e.Type] {
			continue
		}
		mirror := e.Reverse()
		if _, dup := seen[mirror.Key()]; dup {
			continue
		}
		seen[mirror.Key()] = struct{}{}
		out = append(out, mirror)
	}
	return out
}

// redundancyRule names a preferred edge triple and the reciprocal triple it
// makes redundant. Triples are (source kind, target kind, label).
type redundancyRule struct {
	preferredSource entities.EntityKind
	preferredTarget entities.EntityKind
	preferredLabel  string
	redundantSource entities.EntityKind
	redundantTarget entities.EntityKind
	redundantLabel  string
}

// redundancyRules is the canonical-direction table. Ownership and event
// involvement are declared from the character's side.
var redundancyRules = []redundancyRule{
	{
		preferredSource: entities.KindCharacter, preferredTarget: entities.KindItem, preferredLabel: "owns",
		redundantSource: entities.KindItem, redundantTarget: entities.KindCharacter, redundantLabel: "owned by",
	},
	{
		preferredSource: entities.KindCharacter, preferredTarget: entities.KindEvent, preferredLabel: "involved",
		redundantSource: entities.KindEvent, redundantTarget: entities.KindCharacter, redundantLabel: "involved",
	},
}

// reciprocalKey identifies an edge by endpoints and label only, for
// matching a redundant edge against its preferred counterpart.
type reciprocalKey struct {
	source string
	target string
	label  string
}

// FilterRedundant drops neutral edges whose information is already carried
// by a preferred-direction edge in the same list, per the canonical-rule
// table. All non-neutral edges pass through untouched, as do edges whose
// endpoints cannot be classified against the index.
func FilterRedundant(edges []entities.GraphEdge, ix *NodeIndex) []entities.GraphEdge {
	present := make(map[reciprocalKey]struct{}, len(edges))
	for _, e := range edges {
		present[reciprocalKey{source: e.Source, target: e.Target, label: e.Label}] = struct{}{}
	}

	out := make([]entities.GraphEdge, 0, len(edges))
	for _, e := range edges {
		if !isRedundant(e, ix, present) {
			out = append(out, e)
		}
	}
	return out
}

// isRedundant reports whether the edge matches some rule's redundant triple
// while its reverse matches the rule's preferred triple.
func isRedundant(e entities.GraphEdge, ix *NodeIndex, present map[reciprocalKey]struct{}) bool {
	if e.Type != entities.RelationNeutral {
		return false
	}
	sourceKind := ix.kindOf(e.Source)
	targetKind := ix.kindOf(e.Target)
	for _, rule := range redundancyRules {
		if sourceKind != rule.redundantSource || targetKind != rule.redundantTarget || e.Label != rule.redundantLabel {
			continue
		}
		// The reversed endpoints have the preferred kinds by construction;
		// the preferred edge only needs to exist under the preferred label.
		if _, ok := present[reciprocalKey{source: e.Target, target: e.Source, label: rule.preferredLabel}]; ok {
			return true
		}
	}
	return false
}

// ResolveEntity looks up a single flat entity list by exact id, then exact
// name, then case-insensitive name, returning the first match or nil. It
// follows the same matching policy as NodeIndex.Resolve and the two must
// stay consistent.
func ResolveEntity(ref string, list []entities.Entity) entities.Entity {
	for _, e := range list {
		if e.EntityID() == ref {
			return e
		}
	}
	for _, e := range list {
		if e.EntityName() == ref {
			return e
		}
	}
	for _, e := range list {
		if strings.EqualFold(e.EntityName(), ref) {
			return e
		}
	}
	return nil
}
