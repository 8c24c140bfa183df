// Package sqlite provides a SQLite implementation of the Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.Store using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Flattened entity records from the last sync
	CREATE TABLE IF NOT EXISTS entities (
		key TEXT NOT NULL,
		world_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		normalized_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (world_id, key)
	);
	CREATE INDEX IF NOT EXISTS idx_entities_world ON entities(world_id);
	CREATE INDEX IF NOT EXISTS idx_entities_normalized ON entities(world_id, normalized_name);

	-- Synthesized edge snapshot, replaced wholesale per sync
	CREATE TABLE IF NOT EXISTS edges (
		id TEXT PRIMARY KEY,
		world_id TEXT NOT NULL,
		source TEXT NOT NULL,
		target TEXT NOT NULL,
		type TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(world_id, source, target, type, label)
	);
	CREATE INDEX IF NOT EXISTS idx_edges_world ON edges(world_id);
	CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(world_id, source);
	CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(world_id, target);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveEntity saves or updates an entity record.
func (r *Repository) SaveEntity(ctx context.Context, rec *entities.EntityRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = timeNow()
	}

	query := `
		INSERT INTO entities (key, world_id, kind, name, normalized_name, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(world_id, key) DO UPDATE SET
			kind = excluded.kind,
			name = excluded.name,
			normalized_name = excluded.normalized_name,
			description = excluded.description
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.Key, rec.WorldID, string(rec.Kind), rec.Name, rec.NormalizedName, rec.Description, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving entity: %w", err)
	}
	return nil
}

// FindEntityByKey finds an entity record by its graph key.
// Returns nil if not found.
func (r *Repository) FindEntityByKey(ctx context.Context, worldID, key string) (*entities.EntityRecord, error) {
	query := `
		SELECT key, world_id, kind, name, normalized_name, description, created_at
		FROM entities WHERE world_id = ? AND key = ?
	`
	return r.scanEntity(r.db.QueryRowContext(ctx, query, worldID, key))
}

// FindEntityByName finds an entity record by normalized name.
// Returns nil if not found.
func (r *Repository) FindEntityByName(ctx context.Context, worldID, name string) (*entities.EntityRecord, error) {
	query := `
		SELECT key, world_id, kind, name, normalized_name, description, created_at
		FROM entities WHERE world_id = ? AND normalized_name = ?
	`
	return r.scanEntity(r.db.QueryRowContext(ctx, query, worldID, entities.NormalizeName(name)))
}

// scanEntity scans a single entity row, mapping no-rows to nil.
func (r *Repository) scanEntity(row *sql.Row) (*entities.EntityRecord, error) {
	var rec entities.EntityRecord
	var kind string
	err := row.Scan(&rec.Key, &rec.WorldID, &kind, &rec.Name, &rec.NormalizedName, &rec.Description, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning entity: %w", err)
	}
	rec.Kind = entities.EntityKind(kind)
	return &rec, nil
}

// ListEntities lists entity records for a world with pagination. A
// non-positive limit means no limit.
func (r *Repository) ListEntities(ctx context.Context, worldID string, limit, offset int) ([]entities.EntityRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT key, world_id, kind, name, normalized_name, description, created_at
		FROM entities WHERE world_id = ?
		ORDER BY created_at, key
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, worldID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	var recs []entities.EntityRecord
	for rows.Next() {
		var rec entities.EntityRecord
		var kind string
		if err := rows.Scan(&rec.Key, &rec.WorldID, &kind, &rec.Name, &rec.NormalizedName, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		rec.Kind = entities.EntityKind(kind)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DeleteEntities removes all entity records for a world.
func (r *Repository) DeleteEntities(ctx context.Context, worldID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entities WHERE world_id = ?`, worldID); err != nil {
		return fmt.Errorf("deleting entities: %w", err)
	}
	return nil
}

// CountEntities returns the number of entity records for a world.
func (r *Repository) CountEntities(ctx context.Context, worldID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entities WHERE world_id = ?`, worldID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entities: %w", err)
	}
	return count, nil
}

// ReplaceEdges atomically replaces the stored edge snapshot for a world.
func (r *Repository) ReplaceEdges(ctx context.Context, worldID string, edges []entities.GraphEdge) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM edges WHERE world_id = ?`, worldID); err != nil {
		return fmt.Errorf("clearing edges: %w", err)
	}

	insert := `
		INSERT INTO edges (id, world_id, source, target, type, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	now := timeNow()
	for _, e := range edges {
		if _, err := tx.ExecContext(ctx, insert,
			uuid.New().String(), worldID, e.Source, e.Target, string(e.Type), e.Label, now); err != nil {
			return fmt.Errorf("inserting edge %s -> %s: %w", e.Source, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing edges: %w", err)
	}
	return nil
}

// ListEdges returns the stored edge snapshot for a world in insertion order.
func (r *Repository) ListEdges(ctx context.Context, worldID string) ([]entities.StoredEdge, error) {
	query := `
		SELECT id, world_id, source, target, type, label, created_at
		FROM edges WHERE world_id = ?
		ORDER BY rowid
	`
	rows, err := r.db.QueryContext(ctx, query, worldID)
	if err != nil {
		return nil, fmt.Errorf("listing edges: %w", err)
	}
	defer rows.Close()

	var stored []entities.StoredEdge
	for rows.Next() {
		var se entities.StoredEdge
		var relType string
		if err := rows.Scan(&se.ID, &se.WorldID, &se.Edge.Source, &se.Edge.Target, &relType, &se.Edge.Label, &se.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		se.Edge.Type = entities.RelationshipType(relType)
		stored = append(stored, se)
	}
	return stored, rows.Err()
}

// CountEdges returns the number of stored edges for a world.
func (r *Repository) CountEdges(ctx context.Context, worldID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM edges WHERE world_id = ?`, worldID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting edges: %w", err)
	}
	return count, nil
}
