// internal/words/words.go
//
// Word list management for the Wordle LT engine.
//
// Responsibilities:
//   - Load solution and allowed-guess lists from environment-provided files
//     or fall back to the embedded Lithuanian defaults.
//   - Maintain lookup sets (solutions only, solutions ∪ allowed).
//   - Expose the lists as an injectable value so the engine and tests can run
//     against substitute dictionaries.
//
// Word Lists:
//   - "solutions": canonical daily targets (exactly 5 letters).
//   - "allowed": valid guesses (always includes solutions).
//
// Environment variables:
//   WORDS_SOLUTIONS_FILE=/path/to/solutions.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Words must be 5 letters drawn from a–z plus ąčęėįšųūž.
//   • Lists are normalized to lowercase.
//   • Default() initialization runs once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/zodislt/wordle-lt/assets"
)

// ListVersion tags the shipped word lists. Bumping it invalidates stored
// sessions so every player rolls onto the new list together.
const ListVersion = 2

// Lists bundles the solutions slice with the allowed-guess lookup set.
// Treat as read-only after construction.
type Lists struct {
	solutions []string
	allowed   map[string]struct{}
}

// New builds Lists from raw word slices. Entries are lowercased and filtered
// to valid 5-letter words; solutions are always allowed as guesses.
func New(solutions, allowed []string) *Lists {
	l := &Lists{allowed: make(map[string]struct{})}
	for _, w := range solutions {
		w = strings.TrimSpace(strings.ToLower(w))
		if isWord(w) {
			l.solutions = append(l.solutions, w)
			l.allowed[w] = struct{}{}
		}
	}
	for _, w := range allowed {
		w = strings.TrimSpace(strings.ToLower(w))
		if isWord(w) {
			l.allowed[w] = struct{}{}
		}
	}
	return l
}

// Solutions returns the canonical solutions slice (all lowercase).
func (l *Lists) Solutions() []string { return l.solutions }

// Len reports the number of solutions.
func (l *Lists) Len() int { return len(l.solutions) }

// IsAllowed reports whether w is a legal guess (solutions ∪ allowed).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (solutions, allowed).
func (l *Lists) Stats() (solutionsCount, allowedCount int) {
	return len(l.solutions), len(l.allowed)
}

var (
	defaultOnce  sync.Once
	defaultLists *Lists
	defaultErr   error
)

// Default loads the process-wide word lists exactly once.
//
// Resolution order:
//  1. WORDS_SOLUTIONS_FILE + WORDS_ALLOWED_FILE override both lists.
//  2. WORDS_ALLOWED_FILE alone is used for both.
//  3. Otherwise the embedded Lithuanian lists are used.
//
// Returns an error if the solutions list ends up empty.
func Default() (*Lists, error) {
	defaultOnce.Do(func() {
		var solList, allowList []string

		solutionsPath := os.Getenv("WORDS_SOLUTIONS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case solutionsPath != "" && allowedPath != "":
			var err error
			solList, err = readWordFile(solutionsPath)
			if err != nil {
				defaultErr = err
				return
			}
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				defaultErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case solutionsPath == "" && allowedPath != "":
			var err error
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				defaultErr = err
				return
			}
			solList = allowList

		// Case 3: fallback to embedded defaults
		default:
			var err error
			solList, err = assets.SolutionsList()
			if err != nil {
				defaultErr = err
				return
			}
			allowList, err = assets.AllowedList()
			if err != nil {
				defaultErr = err
				return
			}
		}

		defaultLists = New(solList, allowList)
		if defaultLists.Len() == 0 {
			defaultErr = errors.New("words: solutions list is empty")
		}
	})
	return defaultLists, defaultErr
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if isWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// isWord reports whether s is exactly 5 letters of the game alphabet.
func isWord(s string) bool {
	if utf8.RuneCountInString(s) != 5 {
		return false
	}
	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// IsLetter reports whether r belongs to the game alphabet:
// lowercase ASCII a–z plus the nine Lithuanian diacritic letters.
func IsLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'ą', 'č', 'ę', 'ė', 'į', 'š', 'ų', 'ū', 'ž':
		return true
	}
	return false
}
