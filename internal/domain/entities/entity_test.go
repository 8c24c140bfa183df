package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipDecoding(t *testing.T) {
	t.Run("bare string becomes untyped entry", func(t *testing.T) {
		var r Relationship
		require.NoError(t, json.Unmarshal([]byte(`"Bob"`), &r))
		assert.Equal(t, Relationship{Target: "Bob"}, r)
		assert.False(t, r.IsTyped())
	})

	t.Run("typed object carries through", func(t *testing.T) {
		var r Relationship
		require.NoError(t, json.Unmarshal([]byte(`{"target":"Bob","type":"ally","label":"shield brother"}`), &r))
		assert.Equal(t, Relationship{Target: "Bob", Type: RelationAlly, Label: "shield brother"}, r)
		assert.True(t, r.IsTyped())
	})
}

func TestPermissiveListDecoding(t *testing.T) {
	t.Run("malformed relationships field decodes as empty", func(t *testing.T) {
		var c Character
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice","relationships":"oops"}`), &c))
		assert.Empty(t, c.Relationships)
	})

	t.Run("malformed connections field decodes as empty", func(t *testing.T) {
		var c Character
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice","connections":42}`), &c))
		assert.Empty(t, c.Connections)
	})

	t.Run("malformed name list decodes as empty", func(t *testing.T) {
		var c Character
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice","ownedItems":{"a":1}}`), &c))
		assert.Empty(t, c.OwnedItems)
	})

	t.Run("mixed relationships list", func(t *testing.T) {
		var c Character
		data := `{"name":"Alice","relationships":["Bob",{"target":"Carol","type":"rival"}]}`
		require.NoError(t, json.Unmarshal([]byte(data), &c))
		require.Len(t, c.Relationships, 2)
		assert.False(t, c.Relationships[0].IsTyped())
		assert.Equal(t, RelationRival, c.Relationships[1].Type)
	})

	t.Run("well-formed sibling fields survive a malformed one", func(t *testing.T) {
		var c Character
		data := `{"name":"Alice","locations":"nope","ownedItems":["Sword"]}`
		require.NoError(t, json.Unmarshal([]byte(data), &c))
		assert.Empty(t, c.Locations)
		assert.Equal(t, StringList{"Sword"}, c.OwnedItems)
	})
}

func TestBaseKey(t *testing.T) {
	assert.Equal(t, "c1", Base{ID: "c1", Name: "Alice"}.Key())
	assert.Equal(t, "Alice", Base{Name: "Alice"}.Key())
}

func TestCollectionsFlatten(t *testing.T) {
	c := Collections{
		Characters:   []Character{{Base: Base{Name: "Alice"}}},
		MagicSystems: []MagicSystem{{Base: Base{Name: "Runecraft"}}},
	}

	flat := c.Flatten()

	require.Len(t, flat, 2)
	assert.Equal(t, KindCharacter, flat[0].Kind())
	assert.Equal(t, KindMagicSystem, flat[1].Kind())
	assert.Equal(t, 2, c.Len())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "alice", NormalizeName("  Alice "))
}
