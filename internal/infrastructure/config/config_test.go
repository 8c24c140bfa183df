package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "config file not found")
	})

	t.Run("defaults applied under partial config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, DefaultConfigDir), 0755))
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("qdrant:\n  host: qdrant.internal\n"), 0644))

		cfg, err := Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "qdrant.internal", cfg.Qdrant.Host)
		assert.Equal(t, 6334, cfg.Qdrant.Port)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	})

	t.Run("env var fills missing api keys", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		t.Setenv("OPENAI_API_KEY", "sk-test")

		cfg, err := Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
		assert.Equal(t, "sk-test", cfg.Embedder.APIKey)
	})
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	// Idempotent: an existing config is left alone.
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("llm:\n  model: custom\n"), 0644))
	require.NoError(t, WriteDefault(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.LLM.Model)
}

func TestSanitizeWorldName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Middle Earth", "middle_earth"},
		{"dragon-realm", "dragon_realm"},
		{"Weird!!Name", "weirdname"},
		{"a__b", "a_b"},
		{"___", "default"},
		{"", "default"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeWorldName(tt.in), "input %q", tt.in)
	}
}

func TestWorldPaths(t *testing.T) {
	assert.Equal(t, "chronicle_middle_earth", GenerateCollectionName("Middle Earth"))
	assert.Equal(t,
		filepath.Join("base", ".chronicle", "worlds", "middle_earth", "chronicle.db"),
		SQLitePathForWorld("base", "Middle Earth"))
	assert.Equal(t,
		filepath.Join("base", "entities", "middle_earth"),
		EntitiesDirForWorld("base", "Middle Earth"))
}

func TestWorldsConfig(t *testing.T) {
	dir := t.TempDir()

	worlds, err := LoadWorlds(dir)
	require.NoError(t, err)
	assert.Empty(t, worlds.Worlds)

	worlds.Add("midgard", WorldEntry{Collection: "chronicle_midgard", Description: "test world"})
	require.NoError(t, worlds.Save(dir))

	loaded, err := LoadWorlds(dir)
	require.NoError(t, err)
	assert.True(t, loaded.Exists("midgard"))

	collection, err := loaded.GetCollection("midgard")
	require.NoError(t, err)
	assert.Equal(t, "chronicle_midgard", collection)

	_, err = loaded.Get("asgard")
	assert.ErrorContains(t, err, "not found")

	loaded.Remove("midgard")
	assert.False(t, loaded.Exists("midgard"))
}
