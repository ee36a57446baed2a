// Package blob implements the local key-value slot store backing the
// ledger. Every collection and option list serializes into its own named
// slot; writes replace the whole payload, there are no partial updates.
package blob

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SchemaVersion tags every stored payload. Earlier versions of the app
// wrote unversioned blobs; loads tolerate those.
const SchemaVersion = 1

// Store is a SQLite-backed slot store. All access is synchronous; a save
// either fully replaces the stored payload or fails and leaves it alone.
type Store struct {
	db *sql.DB
}

// Open creates the database file if needed, runs migrations, and returns
// a ready store.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the payload of a slot. An absent slot is not an error: it
// returns (nil, false, nil) and callers treat it as an empty collection.
func (s *Store) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM slots WHERE name = ?`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return payload, true, nil
}

// Save replaces the payload of a slot in a single statement.
func (s *Store) Save(ctx context.Context, slot string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (name, schema_version, payload, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   schema_version = excluded.schema_version,
		   payload = excluded.payload,
		   updated_at = CURRENT_TIMESTAMP`,
		slot, SchemaVersion, payload)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}

	slog.DebugContext(ctx, "Slot saved", "slot", slot, "bytes", len(payload))
	return nil
}
