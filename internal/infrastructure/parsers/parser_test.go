package parsers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emryn/chronicle/internal/domain/entities"
)

func writeCollection(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadCollections(t *testing.T) {
	t.Run("missing files yield empty collections", func(t *testing.T) {
		c, err := LoadCollections(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("loads every kind present", func(t *testing.T) {
		dir := t.TempDir()
		writeCollection(t, dir, CharactersFile, `[
			{"id": "c1", "name": "Alice", "relationships": ["knows Bob"]},
			{"id": "c2", "name": "Bob"}
		]`)
		writeCollection(t, dir, ItemsFile, `[
			{"id": "i1", "name": "Sword", "currentOwner": "c1"}
		]`)
		writeCollection(t, dir, MagicSystemsFile, `[
			{"id": "m1", "name": "Runes"}
		]`)

		c, err := LoadCollections(dir)

		require.NoError(t, err)
		require.Len(t, c.Characters, 2)
		assert.Equal(t, "Alice", c.Characters[0].Name)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "c1", c.Items[0].CurrentOwner)
		require.Len(t, c.MagicSystems, 1)
		assert.Equal(t, 4, c.Len())
	})

	t.Run("malformed list fields decode as empty", func(t *testing.T) {
		dir := t.TempDir()
		writeCollection(t, dir, CharactersFile, `[
			{"id": "c1", "name": "Alice", "connections": "not-a-list", "relationships": 42}
		]`)

		c, err := LoadCollections(dir)

		require.NoError(t, err)
		require.Len(t, c.Characters, 1)
		assert.Empty(t, c.Characters[0].Connections)
		assert.Empty(t, c.Characters[0].Relationships)
	})

	t.Run("unparsable file is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeCollection(t, dir, EventsFile, `{not json`)

		_, err := LoadCollections(dir)
		assert.ErrorContains(t, err, "parsing events.json")
	})
}

func TestParseCharacters(t *testing.T) {
	chars, err := ParseCharacters(strings.NewReader(`[
		{"id": "c1", "name": "Alice", "connections": [{"target": "c2", "type": "ally"}]}
	]`))

	require.NoError(t, err)
	require.Len(t, chars, 1)
	require.Len(t, chars[0].Connections, 1)
	assert.Equal(t, entities.RelationAlly, chars[0].Connections[0].Type)
}

func TestParseConnectionsCSV(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		input := "source,target,type,label\nc1,c2,ally,childhood friends\nAlice,Sword,neutral,\n"

		records, err := ParseConnectionsCSV(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "c1", records[0].Source)
		assert.Equal(t, "c2", records[0].Connection.Target)
		assert.Equal(t, entities.RelationAlly, records[0].Connection.Type)
		assert.Equal(t, "childhood friends", records[0].Connection.Label)
		assert.Equal(t, 2, records[0].LineNum)
		assert.Equal(t, "Alice", records[1].Source)
		assert.Equal(t, 3, records[1].LineNum)
	})

	t.Run("label column optional", func(t *testing.T) {
		records, err := ParseConnectionsCSV(strings.NewReader("source,target,type\nc1,c2,family\n"))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Connection.Label)
	})

	t.Run("empty type allowed", func(t *testing.T) {
		records, err := ParseConnectionsCSV(strings.NewReader("source,target,type\nc1,c2,\n"))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Connection.Type)
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := ParseConnectionsCSV(strings.NewReader("source,label\nc1,foo\n"))
		assert.ErrorContains(t, err, "missing required column: target")
	})

	t.Run("invalid relationship type", func(t *testing.T) {
		_, err := ParseConnectionsCSV(strings.NewReader("source,target,type\nc1,c2,bestie\n"))
		assert.ErrorContains(t, err, "line 2")
		assert.ErrorContains(t, err, "invalid relationship type")
	})
}
