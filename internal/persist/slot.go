// Package persist is the bridge between the in-memory state and one durable
// key-value slot. A slot holds a single JSON snapshot that is replaced
// wholesale on every write.
package persist

import (
	"context"
	"errors"
)

// DefaultKey names the slot holding the dashboard snapshot.
const DefaultKey = "admin-dashboard-state"

// ErrSlotEmpty is returned by Get when nothing has been written yet.
var ErrSlotEmpty = errors.New("state slot is empty")

// Slot defines the interface for a single durable value.
type Slot interface {
	// Get returns the stored bytes or ErrSlotEmpty.
	Get(ctx context.Context) ([]byte, error)

	// Put replaces the stored bytes.
	Put(ctx context.Context, data []byte) error

	// Close releases resources held by the slot.
	Close() error
}
