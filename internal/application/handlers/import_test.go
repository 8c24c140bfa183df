package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emryn/chronicle/internal/domain/mocks"
	"github.com/emryn/chronicle/internal/domain/services"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connections.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("imports resolvable rows", func(t *testing.T) {
		store := mocks.NewStore()
		h := NewImportHandler(services.NewImportService(store))
		csv := writeCSV(t, "source,target,type,label\nAlice,Bob,rival,old grudge\nAlice,ghost,ally,\n")

		result, err := h.Handle(ctx, "w1", writeCollections(t), csv, ImportOptions{})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "unresolvable target")
		assert.Len(t, store.Edges["w1"], 1)
	})

	t.Run("dry run leaves storage untouched", func(t *testing.T) {
		store := mocks.NewStore()
		h := NewImportHandler(services.NewImportService(store))
		csv := writeCSV(t, "source,target,type\nAlice,Bob,ally\n")

		result, err := h.Handle(ctx, "w1", writeCollections(t), csv, ImportOptions{DryRun: true})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Empty(t, store.Edges["w1"])
	})

	t.Run("empty file", func(t *testing.T) {
		h := NewImportHandler(services.NewImportService(mocks.NewStore()))
		csv := writeCSV(t, "source,target,type\n")

		result, err := h.Handle(ctx, "w1", writeCollections(t), csv, ImportOptions{})

		require.NoError(t, err)
		assert.Zero(t, result.Imported)
	})

	t.Run("missing file", func(t *testing.T) {
		h := NewImportHandler(services.NewImportService(mocks.NewStore()))

		_, err := h.Handle(ctx, "w1", writeCollections(t), "/nonexistent.csv", ImportOptions{})
		assert.ErrorContains(t, err, "opening file")
	})
}
