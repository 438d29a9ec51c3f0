// internal/game/score.go
//
// Guess-vs-target comparison: the classic two-pass duplicate-letter
// algorithm, rune-based so Lithuanian diacritics score as distinct letters.

package game

import "strings"

// Normalize lowercases input. Diacritics stay intact; ą and a are different
// letters in this game.
func Normalize(s string) string { return strings.ToLower(s) }

// Score compares guess against target and returns the per-letter feedback.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) target letters by rune.
//
// Pass 2:
//   - For each unmarked guess letter: if remaining count for that rune is
//     positive, mark present and decrement; otherwise mark absent.
//
// This ordering guarantees a repeated letter never collects more
// correct+present marks than its true count in the target, and positional
// matches always win over present-elsewhere matches.
func Score(guess, target string) Attempt {
	guessRunes := []rune(Normalize(guess))
	targetRunes := []rune(Normalize(target))
	n := len(guessRunes)

	letters := make([]Letter, n)
	remainder := make(map[rune]int, n)

	// First pass: correct marks and remainder counts.
	for i := 0; i < n; i++ {
		letters[i].Char = string(guessRunes[i])
		if i < len(targetRunes) && guessRunes[i] == targetRunes[i] {
			letters[i].State = FeedbackCorrect
		} else if i < len(targetRunes) {
			remainder[targetRunes[i]]++
		}
	}

	// Second pass: resolve present/absent for the unmarked cells.
	for i := 0; i < n; i++ {
		if letters[i].State == FeedbackCorrect {
			continue
		}
		if remainder[guessRunes[i]] > 0 {
			letters[i].State = FeedbackPresent
			remainder[guessRunes[i]]--
		} else {
			letters[i].State = FeedbackAbsent
		}
	}
	return Attempt{Letters: letters}
}

// IsWin reports whether every cell of the attempt is correct.
func IsWin(a Attempt) bool {
	if len(a.Letters) != WordLength {
		return false
	}
	for _, l := range a.Letters {
		if l.State != FeedbackCorrect {
			return false
		}
	}
	return true
}
