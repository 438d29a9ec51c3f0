// internal/game/hardmode.go
//
// Hard Mode guess legality: every new guess must respect all hints revealed
// by the entire attempt history, not just the last row.
//
// Derived constraints:
//   - mustAtPos: a position ever marked correct is pinned to that letter.
//   - mustInclude: a letter ever marked present or correct must appear.
//   - minCount: for each letter, the maximum number of present/correct marks
//     it collected within any single past attempt lower-bounds how many
//     copies the guess must contain. Deliberately the max over individual
//     attempts, not the sum across them: two attempts each revealing one
//     copy in different positions do not combine to imply two copies.
//   - onlyAbsent: a letter marked absent somewhere and never present/correct
//     anywhere is known missing from the target and may not be used.
//
// Checks run in that order; the first violation determines the message.

package game

import "strings"

// hardModeFacts is everything the attempt history proves about the target.
type hardModeFacts struct {
	mustAtPos [WordLength]string
	include   []string // present/correct letters, first-seen order
	minCount  map[string]int
	absent    []string // onlyAbsent letters, first-seen order
}

func deriveFacts(attempts []Attempt) hardModeFacts {
	facts := hardModeFacts{minCount: make(map[string]int)}
	seenGood := make(map[string]bool)
	seenAbsent := make(map[string]bool)
	var absentOrder []string

	for _, ar := range attempts {
		perAttempt := make(map[string]int)
		for i, l := range ar.Letters {
			switch l.State {
			case FeedbackCorrect:
				if i < WordLength {
					facts.mustAtPos[i] = l.Char
				}
				perAttempt[l.Char]++
			case FeedbackPresent:
				perAttempt[l.Char]++
			case FeedbackAbsent:
				if !seenAbsent[l.Char] {
					seenAbsent[l.Char] = true
					absentOrder = append(absentOrder, l.Char)
				}
			}
		}
		for ch, n := range perAttempt {
			if !seenGood[ch] {
				seenGood[ch] = true
				facts.include = append(facts.include, ch)
			}
			if n > facts.minCount[ch] {
				facts.minCount[ch] = n
			}
		}
	}

	for _, ch := range absentOrder {
		if !seenGood[ch] {
			facts.absent = append(facts.absent, ch)
		}
	}
	return facts
}

// CheckHardMode verifies guess against the attempt history. Returns nil when
// legal, or a *Reject naming the first violated constraint. A rejected guess
// does not consume an attempt.
func CheckHardMode(guess string, attempts []Attempt) error {
	if len(attempts) == 0 {
		return nil
	}
	guess = Normalize(guess)
	guessRunes := []rune(guess)
	facts := deriveFacts(attempts)

	// Pins only apply to a full-length guess; a short guess falls through to
	// the length validation message instead.
	if len(guessRunes) == WordLength {
		for i, ch := range facts.mustAtPos {
			if ch == "" {
				continue
			}
			if string(guessRunes[i]) != ch {
				return reject("Hard Mode: %d-oje vietoje turi būti „%s“.", i+1, strings.ToUpper(ch))
			}
		}
	}
	for _, ch := range facts.include {
		if !strings.Contains(guess, ch) {
			return reject("Hard Mode: žodyje privalo būti „%s“.", strings.ToUpper(ch))
		}
	}
	for _, ch := range facts.include {
		need := facts.minCount[ch]
		if need > 1 && strings.Count(guess, ch) < need {
			return reject("Hard Mode: žodyje turi būti bent %d raidės „%s“.", need, strings.ToUpper(ch))
		}
	}
	for _, ch := range facts.absent {
		if strings.Contains(guess, ch) {
			return reject("Hard Mode: raidės „%s“ žodyje nėra.", strings.ToUpper(ch))
		}
	}
	return nil
}
