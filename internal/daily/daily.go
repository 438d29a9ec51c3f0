// internal/daily/daily.go
//
// Daily puzzle rotation: epoch-day arithmetic and deterministic target
// selection. The same (epoch day, list version) pair maps every player to the
// same solution index without any server coordination.

package daily

import (
	"math"
	"time"
)

// FallbackWord is served when the solutions list is empty or unreadable.
const FallbackWord = "žodis"

// epoch is the fixed reference date; day 0 is 2025-01-01 local time.
var epochYear, epochMonth, epochDayOfMonth = 2025, time.January, 1

// EpochDay returns the number of local calendar days between now and the
// epoch. Day boundaries are local midnights, so two instants on the same
// local date always agree regardless of wall-clock time or DST shifts.
func EpochDay(now time.Time) int {
	base := time.Date(epochYear, epochMonth, epochDayOfMonth, 0, 0, 0, 0, now.Location())
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Round, not floor: a DST transition makes the midnight gap 23h or 25h.
	return int(math.Round(startOfDay.Sub(base).Hours() / 24))
}

// PickTarget deterministically maps (epochDay, listVersion) to an index into
// a solutions list of length n. An empty list falls back to index 0.
func PickTarget(epochDay, listVersion, n int) int {
	if n <= 0 {
		return 0
	}
	idx := (epochDay*31 + listVersion*9973) % n
	if idx < 0 {
		idx = -idx
	}
	return idx
}

// TargetWord resolves a stored index against the solutions list, clamping
// out-of-range indices and falling back to FallbackWord on an empty list.
func TargetWord(solutions []string, idx int) string {
	if len(solutions) == 0 {
		return FallbackWord
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(solutions)-1 {
		idx = len(solutions) - 1
	}
	if solutions[idx] == "" {
		return FallbackWord
	}
	return solutions[idx]
}
