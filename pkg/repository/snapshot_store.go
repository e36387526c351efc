// Package repository persists serialized engine snapshots keyed by player.
// The engine itself performs no I/O; hosts save the snapshot after each
// mutation and load it when the profile is opened.
package repository

import "context"

// SnapshotStore stores one opaque snapshot blob per player.
type SnapshotStore interface {
	// Load returns the player's latest snapshot, or (nil, nil) when the
	// player has never been saved.
	Load(ctx context.Context, playerID string) ([]byte, error)

	// Save writes the player's snapshot, replacing any previous one.
	Save(ctx context.Context, playerID string, data []byte) error
}
