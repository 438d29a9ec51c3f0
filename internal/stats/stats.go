// internal/stats/stats.go
//
// Durable aggregate statistics: win/loss counters, the 6-bucket attempts
// histogram, streaks with gap detection, and the per-day result log that
// makes recording idempotent. One record per installation, stored as a JSON
// blob through the storage provider.

package stats

import (
	"encoding/json"

	"github.com/zodislt/wordle-lt/internal/storage"
)

// DefaultKey is the storage key for the stats blob.
const DefaultKey = "wordle-lt:stats"

const buckets = 6

// Outcome of one finished daily game.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Stats is the persisted ledger.
type Stats struct {
	GamesPlayed   int             `json:"gamesPlayed"`
	Wins          int             `json:"wins"`
	ByAttempts    []int           `json:"byAttempts"` // bucket i = wins in i+1 tries
	CurrentStreak int             `json:"currentStreak"`
	MaxStreak     int             `json:"maxStreak"`
	LastPlayedDay *int            `json:"lastPlayedDay,omitempty"`
	ResultsByDay  map[int]Outcome `json:"resultsByDay"`
}

func defaults() Stats {
	return Stats{
		ByAttempts:   make([]int, buckets),
		ResultsByDay: make(map[int]Outcome),
	}
}

// Ledger reads and writes the stats blob.
type Ledger struct {
	store storage.Provider
	key   string
}

// NewLedger constructs a Ledger over the given provider. An empty key uses
// DefaultKey.
func NewLedger(store storage.Provider, key string) *Ledger {
	if key == "" {
		key = DefaultKey
	}
	return &Ledger{store: store, key: key}
}

// Load returns the persisted stats, or a zeroed record when the blob is
// missing, unparsable, or the histogram is not exactly 6 buckets.
func (l *Ledger) Load() Stats {
	raw, ok := l.store.Get(l.key)
	if !ok {
		return defaults()
	}
	var s Stats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return defaults()
	}
	if len(s.ByAttempts) != buckets {
		return defaults()
	}
	if s.ResultsByDay == nil {
		s.ResultsByDay = make(map[int]Outcome)
	}
	return s
}

func (l *Ledger) save(s Stats) {
	if b, err := json.Marshal(s); err == nil {
		l.store.Set(l.key, string(b))
	}
}

// Record folds one finished game into the ledger and persists the result.
//
//   - Idempotent per day: a second result for the same epochDay is ignored.
//   - attemptsUsed outside 1..6 (including 0 for "unknown") falls into the
//     last histogram bucket.
//   - Streaks: a win extends the streak only when it lands on the day right
//     after lastPlayedDay; any gap restarts at 1; a loss resets to 0.
func (l *Ledger) Record(epochDay int, outcome Outcome, attemptsUsed int) Stats {
	s := l.Load()
	if _, done := s.ResultsByDay[epochDay]; done {
		return s
	}
	s.ResultsByDay[epochDay] = outcome
	s.GamesPlayed++
	if outcome == OutcomeWin {
		s.Wins++
		idx := buckets - 1
		if attemptsUsed >= 1 && attemptsUsed <= buckets {
			idx = attemptsUsed - 1
		}
		s.ByAttempts[idx]++
		if s.LastPlayedDay != nil && epochDay == *s.LastPlayedDay+1 {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
	} else {
		s.CurrentStreak = 0
	}
	day := epochDay
	s.LastPlayedDay = &day
	l.save(s)
	return s
}
