// internal/leaderboard/leaderboard.go
//
// Ranked list of named results, persisted whole as a JSON array. Sort tiers,
// ascending, earlier tier wins ties:
//  1. Hard Mode entries before normal ones.
//  2. Fewer attempts.
//  3. Lower elapsed time (a missing time sorts after any numeric time).
//  4. Earlier dateISO.

package leaderboard

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/zodislt/wordle-lt/internal/storage"
)

// addMu serializes the load-append-save cycle across all Board values in the
// process. Boards are cheap per-request views over one shared blob, so
// concurrent publishes would otherwise overwrite each other's appends.
var addMu sync.Mutex

const (
	// DefaultKey is the storage key for the board blob.
	DefaultKey = "wordle-lt:leaderboard"
	// NameKey stores the last display name used, to pre-fill the prompt.
	NameKey = "wordle-lt:name"
	// DefaultLimit caps the persisted board size.
	DefaultLimit = 50
)

// Entry is one finished win on the board.
type Entry struct {
	Name     string `json:"name"`
	EpochDay int    `json:"epochDay"`
	Attempts int    `json:"attempts"`
	TimeMs   *int64 `json:"timeMs"`
	HardMode bool   `json:"hardMode"`
	DateISO  string `json:"dateISO"`
}

// Board reads and writes the persisted leaderboard.
type Board struct {
	store   storage.Provider
	key     string
	nameKey string
	limit   int
}

// New constructs a Board over the given provider. Empty keys use DefaultKey
// and NameKey; limit <= 0 uses DefaultLimit.
func New(store storage.Provider, key, nameKey string, limit int) *Board {
	if key == "" {
		key = DefaultKey
	}
	if nameKey == "" {
		nameKey = NameKey
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Board{store: store, key: key, nameKey: nameKey, limit: limit}
}

// Load returns the persisted entries (already sorted by construction).
// Missing or corrupt storage yields an empty board.
func (b *Board) Load() []Entry {
	raw, ok := b.store.Get(b.key)
	if !ok {
		return []Entry{}
	}
	var out []Entry
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []Entry{}
	}
	return out
}

// Add appends e, re-sorts, truncates to the board limit, persists the result
// and returns it. Safe for concurrent use.
func (b *Board) Add(e Entry) []Entry {
	addMu.Lock()
	defer addMu.Unlock()
	entries := append(b.Load(), e)
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	if len(entries) > b.limit {
		entries = entries[:b.limit]
	}
	if raw, err := json.Marshal(entries); err == nil {
		b.store.Set(b.key, string(raw))
	}
	return entries
}

// LastName returns the most recently used display name, if any.
func (b *Board) LastName() string {
	v, _ := b.store.Get(b.nameKey)
	return v
}

// SetLastName remembers the display name for the next prompt.
func (b *Board) SetLastName(name string) {
	name = strings.TrimSpace(name)
	if name != "" {
		b.store.Set(b.nameKey, name)
	}
}

func less(a, b Entry) bool {
	if a.HardMode != b.HardMode {
		return a.HardMode
	}
	if a.Attempts != b.Attempts {
		return a.Attempts < b.Attempts
	}
	switch {
	case a.TimeMs == nil && b.TimeMs == nil:
		// fall through to date
	case a.TimeMs == nil:
		return false
	case b.TimeMs == nil:
		return true
	case *a.TimeMs != *b.TimeMs:
		return *a.TimeMs < *b.TimeMs
	}
	return a.DateISO < b.DateISO
}
