package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emryn/chronicle/internal/domain/entities"
	embedder "github.com/emryn/chronicle/internal/infrastructure/embedder/openai"
)

// testVector builds a vector of the collection's dimension with a dominant
// component, so cosine similarity ranks records deterministically.
func testVector(dominant int) []float32 {
	vec := make([]float32, embedder.VectorSize)
	for i := range vec {
		vec[i] = 0.01
	}
	vec[dominant] = 1.0
	return vec
}

func testRecord(key, name string, kind entities.EntityKind, dominant int) entities.EntityRecord {
	return entities.EntityRecord{
		Key:            key,
		WorldID:        testWorld,
		Kind:           kind,
		Name:           name,
		NormalizedName: entities.NormalizeName(name),
		Description:    name + " description",
		Embedding:      testVector(dominant),
	}
}

func TestQdrantRoundTrip(t *testing.T) {
	ctx := context.Background()

	records := []entities.EntityRecord{
		testRecord("c1", "Alice", entities.KindCharacter, 0),
		testRecord("c2", "Bob", entities.KindCharacter, 100),
		testRecord("i1", "Sword", entities.KindItem, 200),
	}
	require.NoError(t, testRepo.SaveBatch(ctx, records))

	t.Run("search ranks by similarity", func(t *testing.T) {
		hits, err := testRepo.Search(ctx, testVector(0), 3)

		require.NoError(t, err)
		require.NotEmpty(t, hits)
		assert.Equal(t, "c1", hits[0].Record.Key)
		assert.Equal(t, entities.KindCharacter, hits[0].Record.Kind)
		assert.Equal(t, "Alice description", hits[0].Record.Description)
		assert.Greater(t, hits[0].Score, float32(0))
	})

	t.Run("count reflects saved records", func(t *testing.T) {
		count, err := testRepo.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
	})

	t.Run("re-saving a key upserts instead of duplicating", func(t *testing.T) {
		updated := testRecord("c1", "Alice the Bold", entities.KindCharacter, 0)
		require.NoError(t, testRepo.Save(ctx, updated))

		count, err := testRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)

		hits, err := testRepo.Search(ctx, testVector(0), 1)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "Alice the Bold", hits[0].Record.Name)
	})

	t.Run("delete removes by key", func(t *testing.T) {
		require.NoError(t, testRepo.Delete(ctx, "i1"))

		count, err := testRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)
	})
}
