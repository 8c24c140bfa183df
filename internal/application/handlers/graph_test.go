package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emryn/chronicle/internal/domain/entities"
)

// writeCollections sets up an on-disk world with two characters and an item
// owned by the first.
func writeCollections(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"characters.json": `[
			{"id": "c1", "name": "Alice", "ownedItems": ["i1"], "connections": [{"target": "c2", "type": "ally", "label": "childhood friends"}]},
			{"id": "c2", "name": "Bob"}
		]`,
		"items.json": `[
			{"id": "i1", "name": "Sword", "description": "A fine blade.", "currentOwner": "c1"}
		]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestGraphHandler(t *testing.T) {
	h := NewGraphHandler()

	t.Run("builds annotated graph", func(t *testing.T) {
		result, err := h.Handle(writeCollections(t), GraphOptions{})

		require.NoError(t, err)
		require.Len(t, result.Nodes, 3)
		assert.Equal(t, "c1", result.Nodes[0].ID)
		assert.Equal(t, "ellipse", result.Nodes[0].Shape)
		assert.Equal(t, "hexagon", result.Nodes[2].Shape)

		require.Len(t, result.Edges, 3)
		assert.Equal(t, "#4caf50", result.Edges[0].Color)
		assert.Equal(t, entities.RelationAlly, result.Edges[0].Type)
	})

	t.Run("expand adds mirrors", func(t *testing.T) {
		plain, err := h.Handle(writeCollections(t), GraphOptions{})
		require.NoError(t, err)
		expanded, err := h.Handle(writeCollections(t), GraphOptions{Expand: true})
		require.NoError(t, err)

		assert.Greater(t, len(expanded.Edges), len(plain.Edges))
	})

	t.Run("filter drops the owned-by reciprocal", func(t *testing.T) {
		result, err := h.Handle(writeCollections(t), GraphOptions{Filter: true})

		require.NoError(t, err)
		for _, e := range result.Edges {
			assert.NotEqual(t, "owned by", e.Label)
		}
	})

	t.Run("missing directory yields empty graph", func(t *testing.T) {
		result, err := h.Handle(t.TempDir(), GraphOptions{})

		require.NoError(t, err)
		assert.Empty(t, result.Nodes)
		assert.Empty(t, result.Edges)
	})

	t.Run("unparsable file is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "characters.json"), []byte("{bad"), 0644))

		_, err := h.Handle(dir, GraphOptions{})
		assert.ErrorContains(t, err, "loading collections")
	})
}

func TestEntityHandler(t *testing.T) {
	h := NewEntityHandler()

	t.Run("resolves by id", func(t *testing.T) {
		result, err := h.Handle(writeCollections(t), "i1")

		require.NoError(t, err)
		assert.Equal(t, "Sword", result.Name)
		assert.Equal(t, entities.KindItem, result.Kind)
		assert.Equal(t, "A fine blade.", result.Description)
	})

	t.Run("resolves by case-insensitive name", func(t *testing.T) {
		result, err := h.Handle(writeCollections(t), "aLiCe")

		require.NoError(t, err)
		assert.Equal(t, "c1", result.ID)
	})

	t.Run("collects edges in both directions", func(t *testing.T) {
		result, err := h.Handle(writeCollections(t), "c1")

		require.NoError(t, err)
		// c1 -> c2 ally, c1 -> i1 owns, i1 -> c1 owned by
		assert.Len(t, result.Edges, 3)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := h.Handle(writeCollections(t), "ghost")
		assert.ErrorContains(t, err, "entity not found")
	})
}
