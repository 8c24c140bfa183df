package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/mocks"
)

func TestSuggestService(t *testing.T) {
	ctx := context.Background()
	c := entities.Collections{
		Characters: []entities.Character{
			{Base: entities.Base{ID: "c1", Name: "Alice", Description: "Sister of Bob, sworn to the Northern Keep."}},
			{Base: entities.Base{ID: "c2", Name: "Bob"}},
		},
		Locations: []entities.Location{{Base: entities.Base{Name: "Northern Keep"}}},
	}

	t.Run("resolves proposals against the index", func(t *testing.T) {
		llm := mocks.NewLLM()
		llm.Suggestions = []entities.Connection{
			{Target: "bob", Type: entities.RelationFamily},
			{Target: "northern keep", Type: entities.RelationNeutral, Label: "sworn to"},
		}
		svc := NewSuggestService(llm)

		out, err := svc.Suggest(ctx, "Alice", c)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "c2", out[0].Target)
		assert.Equal(t, "Northern Keep", out[1].Target)

		assert.Equal(t, "Alice", llm.LastInput.Name)
		assert.Contains(t, llm.LastInput.Description, "Sister of Bob")
		assert.NotContains(t, llm.LastInput.Known, "Alice", "entity is not a candidate target for itself")
		assert.Contains(t, llm.LastInput.Known, "Bob")
	})

	t.Run("drops unresolvable and invalid proposals", func(t *testing.T) {
		llm := mocks.NewLLM()
		llm.Suggestions = []entities.Connection{
			{Target: "Ghost", Type: entities.RelationAlly},
			{Target: "Bob", Type: "soulmate"},
			{Target: "Bob", Type: entities.RelationAlly},
		}
		svc := NewSuggestService(llm)

		out, err := svc.Suggest(ctx, "Alice", c)

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "c2", out[0].Target)
	})

	t.Run("drops proposals duplicating existing edges", func(t *testing.T) {
		withEdge := c
		withEdge.Characters = append([]entities.Character{}, c.Characters...)
		withEdge.Characters[0].Connections = entities.ConnectionList{
			{Target: "c2", Type: entities.RelationFamily},
		}

		llm := mocks.NewLLM()
		llm.Suggestions = []entities.Connection{{Target: "Bob", Type: entities.RelationFamily}}
		svc := NewSuggestService(llm)

		out, err := svc.Suggest(ctx, "Alice", withEdge)

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("unknown entity is an error", func(t *testing.T) {
		svc := NewSuggestService(mocks.NewLLM())
		_, err := svc.Suggest(ctx, "Carol", c)
		assert.ErrorContains(t, err, "not found")
	})
}
