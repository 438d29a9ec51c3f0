// internal/storage/storage.go
//
// Key-value blob persistence for game state, stats, and the leaderboard.
//
// Characteristics:
//   - Values are opaque strings (JSON blobs or plain text); callers own the
//     schema and versioning of what they store.
//   - Reads report presence with a boolean; writes are fire-and-forget.
//     Backend failures are logged and swallowed; a missing or corrupt blob
//     is always treated as absent so the game can fall back to defaults.
//   - Implementations: in-memory (this file), file-per-key, SQLite.

package storage

import "sync"

// Provider is the narrow persistence capability the game core consumes.
// Implementations may be backed by memory, files, SQLite, etc.
type Provider interface {
	// Get returns the blob stored under key, and whether one exists.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous blob.
	Set(key, value string)
}

// memory is an in-memory map-based Provider implementation.
type memory struct {
	mu    sync.RWMutex // guards blobs map
	blobs map[string]string
}

// NewMemory constructs a new in-memory Provider.
// State is lost when the process restarts; intended for tests and dev runs.
func NewMemory() Provider {
	return &memory{blobs: make(map[string]string)}
}

func (m *memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	return v, ok
}

func (m *memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
}
