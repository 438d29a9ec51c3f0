// internal/game/share.go
//
// Share-text rendering and the session blob codec.

package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShareTitle heads the share text.
const ShareTitle = "Wordle LT"

// ShareText renders the classic result card:
//
//	Wordle LT <epochDay> <attemptsOrMax>/6
//	<one glyph row per attempt>
//
//	<origin>
//
// A lost or unfinished game shows the full attempt budget in the header.
func ShareText(g Game, origin string) string {
	headerAttempts := MaxAttempts
	if g.Status == StatusWon {
		headerAttempts = len(g.Attempts)
	}
	lines := []string{fmt.Sprintf("%s %d %d/%d", ShareTitle, g.EpochDay, headerAttempts, MaxAttempts)}
	for _, ar := range g.Attempts {
		var row strings.Builder
		for _, l := range ar.Letters {
			switch l.State {
			case FeedbackCorrect:
				row.WriteString("🟩")
			case FeedbackPresent:
				row.WriteString("🟨")
			default:
				row.WriteString("⬛")
			}
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, "", origin)
	return strings.Join(lines, "\n")
}

// FormatDuration renders milliseconds as "3m 12s" / "45s", or "-" when
// unknown.
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	s := ms / 1000
	m := s / 60
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s%60)
	}
	return fmt.Sprintf("%ds", s)
}

// Encode serializes a session to its storage blob.
func Encode(g Game) (string, error) {
	b, err := json.Marshal(g)
	return string(b), err
}

// Decode parses a storage blob back into a session.
func Decode(raw string) (Game, error) {
	var g Game
	err := json.Unmarshal([]byte(raw), &g)
	return g, err
}
