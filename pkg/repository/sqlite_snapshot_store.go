package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/habitforge/progression-engine/pkg/errors"
)

// SQLiteSnapshotStore implements SnapshotStore on a local SQLite file,
// the default for on-device profiles.
type SQLiteSnapshotStore struct {
	conn *sqlx.DB
}

// OpenSQLiteSnapshotStore opens or creates the SQLite database at path and
// ensures the snapshot table exists.
func OpenSQLiteSnapshotStore(path string) (*SQLiteSnapshotStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.ErrDatabaseError("open sqlite database", err)
	}

	s := &SQLiteSnapshotStore{conn: conn}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteSnapshotStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteSnapshotStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS player_snapshots (
		player_id  TEXT PRIMARY KEY,
		snapshot   BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.conn.Exec(schema); err != nil {
		return errors.ErrDatabaseError("create snapshot table", err)
	}
	return nil
}

// Load returns the player's latest snapshot, or (nil, nil) when the player
// has never been saved.
func (s *SQLiteSnapshotStore) Load(ctx context.Context, playerID string) ([]byte, error) {
	var data []byte
	err := s.conn.GetContext(ctx, &data,
		`SELECT snapshot FROM player_snapshots WHERE player_id = ?`, playerID)
	if err == sql.ErrNoRows {
		return nil, nil // never saved
	}
	if err != nil {
		return nil, errors.ErrDatabaseError("load snapshot", err)
	}
	return data, nil
}

// Save upserts the player's snapshot.
func (s *SQLiteSnapshotStore) Save(ctx context.Context, playerID string, data []byte) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO player_snapshots (player_id, snapshot, updated_at)
		VALUES (?, ?, unixepoch())
		ON CONFLICT (player_id)
		DO UPDATE SET snapshot = excluded.snapshot, updated_at = unixepoch()
	`, playerID, data)
	if err != nil {
		return errors.ErrDatabaseError("save snapshot", err)
	}
	return nil
}
