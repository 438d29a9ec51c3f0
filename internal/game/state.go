// internal/game/state.go
//
// The session state machine. All mutations happen synchronously in response
// to a discrete event: keystroke, backspace, submit, hard-mode toggle,
// new-game, or timer tick. Transitions: playing → won, playing → lost,
// playing → playing; won and lost are terminal.
//
// The engine owns one player's session blob: it loads it on construction,
// rolls it over when the epoch day or wordlist version changed, and persists
// it after every mutation. Persistence is fire-and-forget through the
// storage provider.

package game

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/zodislt/wordle-lt/internal/daily"
	"github.com/zodislt/wordle-lt/internal/stats"
	"github.com/zodislt/wordle-lt/internal/storage"
	"github.com/zodislt/wordle-lt/internal/words"
)

// DefaultStateKey is the storage key for the session blob.
const DefaultStateKey = "wordle-lt:state"

// forfeitPad fills the empty cells of a deadline-forfeited attempt.
const forfeitPad = "·"

// Wordlist is the read-only word configuration the engine consumes.
// Satisfied by *words.Lists; tests substitute their own.
type Wordlist interface {
	Dictionary
	Solutions() []string
}

// Options configures an Engine. Zero values get sensible defaults.
type Options struct {
	Store    storage.Provider // default: in-memory
	Ledger   *stats.Ledger    // default: ledger over Store with its default key
	StateKey string           // default: DefaultStateKey
	Now      func() time.Time // default: time.Now
	ListVer  int              // default: words.ListVersion

	// GuessTimeLimit, when positive, arms a per-guess deadline while Hard
	// Mode is on. Expiry forfeits the attempt (all letters absent).
	GuessTimeLimit time.Duration
}

// SubmitResult reports a successful submit.
type SubmitResult struct {
	Attempt Attempt
	Status  Status
	Message string // win/loss toast, empty on a non-terminal submit
}

// Engine drives a single player's daily session.
type Engine struct {
	mu     sync.Mutex
	lists  Wordlist
	store  storage.Provider
	ledger *stats.Ledger
	key    string
	now    func() time.Time
	lver   int
	limit  time.Duration
	state  Game
}

// NewEngine loads (or freshly creates) the session for today and returns an
// engine over it.
func NewEngine(lists Wordlist, opts Options) *Engine {
	if opts.Store == nil {
		opts.Store = storage.NewMemory()
	}
	if opts.Ledger == nil {
		opts.Ledger = stats.NewLedger(opts.Store, "")
	}
	if opts.StateKey == "" {
		opts.StateKey = DefaultStateKey
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ListVer == 0 {
		opts.ListVer = words.ListVersion
	}
	e := &Engine{
		lists:  lists,
		store:  opts.Store,
		ledger: opts.Ledger,
		key:    opts.StateKey,
		now:    opts.Now,
		lver:   opts.ListVer,
		limit:  opts.GuessTimeLimit,
	}
	e.state = e.load()
	return e
}

// fresh builds an empty session for today's puzzle.
func (e *Engine) fresh() Game {
	today := daily.EpochDay(e.now())
	return Game{
		Attempts:         []Attempt{},
		Keyboard:         map[string]Feedback{},
		Status:           StatusPlaying,
		EpochDay:         today,
		TargetIndex:      daily.PickTarget(today, e.lver, len(e.lists.Solutions())),
		Version:          StateVersion,
		WordlistVersion:  e.lver,
		GuessTimeLimitMs: e.limit.Milliseconds(),
	}
}

// load reads the stored session, discarding it on schema-version mismatch or
// day/list rollover. Only bestTimeMs survives a rollover.
func (e *Engine) load() Game {
	raw, ok := e.store.Get(e.key)
	if !ok {
		return e.fresh()
	}
	g, err := Decode(raw)
	if err != nil || g.Version != StateVersion {
		return e.fresh()
	}
	if g.EpochDay != daily.EpochDay(e.now()) || g.WordlistVersion != e.lver {
		next := e.fresh()
		next.BestTimeMs = g.BestTimeMs
		return next
	}
	if g.Keyboard == nil {
		g.Keyboard = map[string]Feedback{}
	}
	if g.Attempts == nil {
		g.Attempts = []Attempt{}
	}
	return g
}

func (e *Engine) persist() {
	e.state.Version = StateVersion
	e.state.WordlistVersion = e.lver
	if raw, err := Encode(e.state); err == nil {
		e.store.Set(e.key, raw)
	}
}

// Snapshot returns a copy of the current session for rendering.
func (e *Engine) Snapshot() Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.state)
}

func snapshot(g Game) Game {
	out := g
	out.Attempts = append([]Attempt(nil), g.Attempts...)
	out.Keyboard = make(map[string]Feedback, len(g.Keyboard))
	for k, v := range g.Keyboard {
		out.Keyboard[k] = v
	}
	return out
}

// Target resolves today's solution word.
func (e *Engine) Target() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return daily.TargetWord(e.lists.Solutions(), e.state.TargetIndex)
}

// Type appends one letter to the current input. No-op when the row is full,
// the game is over, or ch is not a single game-alphabet letter. The first
// keystroke of the session stamps startedAt and, in Hard Mode with a limit
// configured, arms the per-guess deadline.
func (e *Engine) Type(ch string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Status != StatusPlaying {
		return
	}
	ch = Normalize(ch)
	r, size := utf8.DecodeRuneInString(ch)
	if size == 0 || size != len(ch) || !words.IsLetter(r) {
		return
	}
	if utf8.RuneCountInString(e.state.Current) >= WordLength {
		return
	}
	wasEmpty := e.state.Current == ""
	e.state.Current += ch
	nowMs := e.now().UnixMilli()
	if e.state.StartedAt == 0 {
		e.state.StartedAt = nowMs
	}
	if wasEmpty && e.state.HardMode && e.state.GuessTimeLimitMs > 0 {
		e.state.GuessDeadline = nowMs + e.state.GuessTimeLimitMs
	}
	e.persist()
}

// Backspace removes the last letter of the current input.
func (e *Engine) Backspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Status != StatusPlaying || e.state.Current == "" {
		return
	}
	runes := []rune(e.state.Current)
	e.state.Current = string(runes[:len(runes)-1])
	e.persist()
}

// ToggleHardMode flips the Hard Mode option. The toggle itself never touches
// attempts or status.
func (e *Engine) ToggleHardMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.HardMode = !e.state.HardMode
	if !e.state.HardMode {
		e.state.GuessDeadline = 0
	}
	e.persist()
	return e.state.HardMode
}

// NewGame resets to a fresh session for today, carrying over bestTimeMs only.
func (e *Engine) NewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	best := e.state.BestTimeMs
	e.state = e.fresh()
	e.state.BestTimeMs = best
	e.persist()
}

// Submit runs the Hard Mode check, then validation, then scores the current
// input against today's target. A rejection returns a *Reject and leaves the
// state untouched (current input preserved for correction).
func (e *Engine) Submit() (*SubmitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Status != StatusPlaying {
		return nil, reject("Žaidimas baigtas. Pradėk naują žaidimą.")
	}
	guess := Normalize(e.state.Current)
	if e.state.HardMode {
		if err := CheckHardMode(guess, e.state.Attempts); err != nil {
			return nil, err
		}
	}
	if err := Validate(guess, e.lists); err != nil {
		return nil, err
	}
	target := daily.TargetWord(e.lists.Solutions(), e.state.TargetIndex)
	return e.finalize(Score(guess, target), target)
}

// finalize appends a scored attempt and drives the status transition, hint
// merge, timing, best-time tracking, and exactly-once stats recording.
// Caller holds the lock.
func (e *Engine) finalize(ar Attempt, target string) (*SubmitResult, error) {
	won := IsWin(ar)
	e.state.Attempts = append(e.state.Attempts, ar)
	if len(e.state.Attempts) > MaxAttempts {
		e.state.Attempts = e.state.Attempts[:MaxAttempts]
	}
	e.state.Current = ""
	e.state.GuessDeadline = 0
	mergeKeyboard(e.state.Keyboard, ar)

	switch {
	case won:
		e.state.Status = StatusWon
	case len(e.state.Attempts) >= MaxAttempts:
		e.state.Status = StatusLost
	default:
		e.state.Status = StatusPlaying
	}

	msg := ""
	if e.state.Status != StatusPlaying {
		e.state.FinishedAt = e.now().UnixMilli()
		var elapsed int64
		if e.state.StartedAt > 0 {
			elapsed = e.state.FinishedAt - e.state.StartedAt
		}
		if won && elapsed > 0 && (e.state.BestTimeMs == 0 || elapsed < e.state.BestTimeMs) {
			e.state.BestTimeMs = elapsed
		}
		if won {
			if elapsed > 0 {
				msg = fmt.Sprintf("Puiku! Atspėjai per %ds.", int(elapsed/1000))
			} else {
				msg = "Puiku! Atspėjai!"
			}
			e.ledger.Record(e.state.EpochDay, stats.OutcomeWin, len(e.state.Attempts))
		} else {
			msg = fmt.Sprintf("Bandymų nebeliko. Teisingas žodis: %s.", strings.ToUpper(target))
			e.ledger.Record(e.state.EpochDay, stats.OutcomeLoss, 0)
		}
	}
	e.persist()
	return &SubmitResult{Attempt: ar, Status: e.state.Status, Message: msg}, nil
}

// Tick checks the Hard Mode per-guess deadline. On expiry it forfeits the
// attempt: the partial input is padded and scored all-absent, then flows
// through the normal terminal-status and stats path. Display refresh never
// mutates anything else.
func (e *Engine) Tick() *SubmitResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Status != StatusPlaying || e.state.GuessDeadline == 0 {
		return nil
	}
	if e.now().UnixMilli() < e.state.GuessDeadline {
		return nil
	}
	target := daily.TargetWord(e.lists.Solutions(), e.state.TargetIndex)
	res, _ := e.finalize(forfeitAttempt(e.state.Current), target)
	return res
}

// forfeitAttempt builds an all-absent row from whatever was typed, padded to
// the full word length.
func forfeitAttempt(current string) Attempt {
	letters := make([]Letter, 0, WordLength)
	for _, r := range Normalize(current) {
		letters = append(letters, Letter{Char: string(r), State: FeedbackAbsent})
	}
	for len(letters) < WordLength {
		letters = append(letters, Letter{Char: forfeitPad, State: FeedbackAbsent})
	}
	return Attempt{Letters: letters[:WordLength]}
}

// mergeKeyboard upgrades per-key hints using feedback strength; a key's hint
// never downgrades. Placeholder cells are skipped.
func mergeKeyboard(kb map[string]Feedback, ar Attempt) {
	for _, l := range ar.Letters {
		r, _ := utf8.DecodeRuneInString(l.Char)
		if !words.IsLetter(r) {
			continue
		}
		if prev, ok := kb[l.Char]; !ok || l.State.Strength() > prev.Strength() {
			kb[l.Char] = l.State
		}
	}
}

// RunningMs reports elapsed play time for display: live while playing,
// frozen once finished, -1 when the session has not started.
func (e *Engine) RunningMs() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.StartedAt == 0 {
		return -1
	}
	if e.state.Status == StatusPlaying {
		return e.now().UnixMilli() - e.state.StartedAt
	}
	if e.state.FinishedAt > 0 {
		return e.state.FinishedAt - e.state.StartedAt
	}
	return -1
}
