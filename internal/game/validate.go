// internal/game/validate.go
//
// Guess legality checks, applied before scoring. Character-set and length
// problems are reported before the dictionary lookup; malformed input is
// never dictionary-checked. All rejection messages are user-facing
// Lithuanian strings.

package game

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/zodislt/wordle-lt/internal/words"
)

// Dictionary answers allowed-word membership. Satisfied by *words.Lists;
// tests substitute their own lists.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Reject is a recoverable input rejection: the guess was refused, the game
// state is unchanged, and Msg is ready for display.
type Reject struct {
	Msg string
}

func (e *Reject) Error() string { return e.Msg }

func reject(format string, args ...any) error {
	return &Reject{Msg: fmt.Sprintf(format, args...)}
}

// IsReject reports whether err is an input rejection (as opposed to a
// programming error).
func IsReject(err error) bool {
	var r *Reject
	return errors.As(err, &r)
}

// Validate normalizes raw and checks, in order: character set, length,
// dictionary membership. Returns nil for a legal guess, or a *Reject.
func Validate(raw string, dict Dictionary) error {
	guess := Normalize(raw)
	for _, r := range guess {
		if !words.IsLetter(r) {
			return reject("Leidžiamos tik raidės (A–Z ir lietuviškos ąčęėįšųūž).")
		}
	}
	n := utf8.RuneCountInString(guess)
	if n < WordLength {
		return reject("Žodis per trumpas (%d/5). Įvesk 5 raidžių žodį.", n)
	}
	if n > WordLength {
		return reject("Žodis per ilgas (%d/5). Įvesk 5 raidžių žodį.", n)
	}
	if !dict.IsAllowed(guess) {
		return reject("Žodyne nėra: „%s“. Pasirink kitą 5 raidžių žodį.", guess)
	}
	return nil
}
