package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emryn/chronicle/internal/application/handlers"
	"github.com/emryn/chronicle/internal/domain/ports"
	"github.com/emryn/chronicle/internal/domain/services"
	"github.com/emryn/chronicle/internal/infrastructure/config"
	embedder "github.com/emryn/chronicle/internal/infrastructure/embedder/openai"
	llm "github.com/emryn/chronicle/internal/infrastructure/llm/openai"
	"github.com/emryn/chronicle/internal/infrastructure/store/sqlite"
	"github.com/emryn/chronicle/internal/infrastructure/vectordb/qdrant"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	Worlds         *config.WorldsConfig
	EntitiesDir    string
	SyncHandler    *handlers.SyncHandler
	SearchHandler  *handlers.SearchHandler
	SuggestHandler *handlers.SuggestHandler
	ImportHandler  *handlers.ImportHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	vectorDB *qdrant.Repository
	store    *sqlite.Repository
	embedder *embedder.Embedder
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
// Used by commands that need direct repository access.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	worlds, err := config.LoadWorlds(cwd)
	if err != nil {
		return fmt.Errorf("loading worlds: %w", err)
	}

	if globalWorld == "" {
		return errors.New("world is required (use --world flag)")
	}

	collection, err := worlds.GetCollection(globalWorld)
	if err != nil {
		return err
	}

	qdrantCfg := cfg.Qdrant
	qdrantCfg.Collection = collection

	vectorDB, err := qdrant.NewRepository(qdrantCfg)
	if err != nil {
		return fmt.Errorf("creating qdrant repository: %w", err)
	}
	defer vectorDB.Close()

	sqlitePath := config.SQLitePathForWorld(cwd, globalWorld)
	if err := os.MkdirAll(filepath.Dir(sqlitePath), 0755); err != nil {
		return fmt.Errorf("creating world directory: %w", err)
	}
	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: sqlitePath})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	emb, err := embedder.NewEmbedder(cfg.Embedder)
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}

	syncService := services.NewSyncService(store, vectorDB, emb)
	searchService := services.NewSearchService(emb, vectorDB)
	suggestService := services.NewSuggestService(llmClient)
	importService := services.NewImportService(store)

	deps := &internalDeps{
		Deps: Deps{
			Config:         cfg,
			Worlds:         worlds,
			EntitiesDir:    config.EntitiesDirForWorld(cwd, globalWorld),
			SyncHandler:    handlers.NewSyncHandler(syncService),
			SearchHandler:  handlers.NewSearchHandler(searchService),
			SuggestHandler: handlers.NewSuggestHandler(suggestService),
			ImportHandler:  handlers.NewImportHandler(importService),
		},
		vectorDB: vectorDB,
		store:    store,
		embedder: emb,
	}

	return fn(deps)
}

// withStore provides direct relational store access for commands that only
// read persisted records.
func withStore(fn func(ports.Store) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(d.store)
	})
}

// withWorldDir resolves the entities directory for the selected world
// without constructing any API clients. Used by commands that operate purely
// on the collection files.
func withWorldDir(fn func(dir string) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	worlds, err := config.LoadWorlds(cwd)
	if err != nil {
		return fmt.Errorf("loading worlds: %w", err)
	}

	if globalWorld == "" {
		return errors.New("world is required (use --world flag)")
	}

	if !worlds.Exists(globalWorld) {
		return fmt.Errorf("world %q not found (available: %v)", globalWorld, worlds.Names())
	}

	return fn(config.EntitiesDirForWorld(cwd, globalWorld))
}
