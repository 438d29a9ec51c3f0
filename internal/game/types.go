// internal/game/types.go
//
// Core type definitions for the Wordle LT game engine.
// Defines:
//   - Feedback: per-letter result of a guess (correct/present/absent).
//   - Letter, Attempt: one scored cell and one scored 5-letter row.
//   - Status: coarse session state (playing/won/lost).
//   - Game: the persisted session record.

package game

// WordLength is the number of letters per word.
const WordLength = 5

// MaxAttempts is the number of guesses allowed per day.
const MaxAttempts = 6

// StateVersion tags persisted session blobs. A stored blob with a different
// version is discarded and replaced with a fresh session.
const StateVersion = 2

// Feedback represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the (remaining) answer at all.
type Feedback string

const (
	FeedbackAbsent  Feedback = "absent"
	FeedbackPresent Feedback = "present"
	FeedbackCorrect Feedback = "correct"
)

// Strength orders feedback for keyboard-hint merging: absent < present <
// correct. A key's displayed hint only ever upgrades along this order.
func (f Feedback) Strength() int {
	switch f {
	case FeedbackCorrect:
		return 2
	case FeedbackPresent:
		return 1
	default:
		return 0
	}
}

// Letter is one scored cell of an attempt.
type Letter struct {
	Char  string   `json:"char"`
	State Feedback `json:"state"`
}

// Attempt is one scored 5-letter submission. Immutable once created;
// produced only by Score (or a deadline forfeit).
type Attempt struct {
	Letters []Letter `json:"letters"`
}

// Status is the session state. Terminal once won or lost.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Game holds the state of a single daily session. Serialized as the session
// blob; field names match the stored JSON schema.
type Game struct {
	Current         string              `json:"current"`
	Attempts        []Attempt           `json:"attempts"`
	Keyboard        map[string]Feedback `json:"keyboard"`
	Status          Status              `json:"status"`
	EpochDay        int                 `json:"epochDay"`
	TargetIndex     int                 `json:"targetId"`
	Version         int                 `json:"version"`
	WordlistVersion int                 `json:"wordlistVersion"`

	// Timing (unix milliseconds; 0 = unset).
	StartedAt  int64 `json:"startedAt,omitempty"`
	FinishedAt int64 `json:"finishedAt,omitempty"`
	BestTimeMs int64 `json:"bestTimeMs,omitempty"`

	// Options.
	HardMode bool `json:"hardMode,omitempty"`

	// Optional Hard Mode per-guess time limit.
	GuessTimeLimitMs int64 `json:"guessTimeLimitMs,omitempty"`
	GuessDeadline    int64 `json:"guessDeadline,omitempty"`
}
