package repository

import (
	"context"
	"database/sql"

	"github.com/habitforge/progression-engine/pkg/errors"
)

// PostgresSnapshotStore implements SnapshotStore on PostgreSQL. Intended
// for hosts that sync profiles server-side; single-device installs usually
// use the SQLite store instead.
type PostgresSnapshotStore struct {
	db *sql.DB
}

// NewPostgresSnapshotStore creates a PostgreSQL-backed snapshot store.
// The player_snapshots table must exist; see Migrate.
func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{db: db}
}

// Migrate creates the snapshot table if it does not exist.
func (s *PostgresSnapshotStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS player_snapshots (
			player_id  VARCHAR(100) PRIMARY KEY,
			snapshot   JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return errors.ErrDatabaseError("create snapshot table", err)
	}
	return nil
}

// Load returns the player's latest snapshot, or (nil, nil) when the player
// has never been saved.
func (s *PostgresSnapshotStore) Load(ctx context.Context, playerID string) ([]byte, error) {
	query := `
		SELECT snapshot
		FROM player_snapshots
		WHERE player_id = $1
	`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, playerID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil // never saved
	}
	if err != nil {
		return nil, errors.ErrDatabaseError("load snapshot", err)
	}
	return data, nil
}

// Save upserts the player's snapshot.
func (s *PostgresSnapshotStore) Save(ctx context.Context, playerID string, data []byte) error {
	query := `
		INSERT INTO player_snapshots (player_id, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id)
		DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, playerID, data)
	if err != nil {
		return errors.ErrDatabaseError("save snapshot", err)
	}
	return nil
}
