package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zodislt/wordle-lt/internal/daily"
	"github.com/zodislt/wordle-lt/internal/stats"
	"github.com/zodislt/wordle-lt/internal/storage"
	"github.com/zodislt/wordle-lt/internal/words"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T, solutions, allowed []string) (*Engine, *fakeClock, storage.Provider) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)}
	store := storage.NewMemory()
	e := NewEngine(words.New(solutions, allowed), Options{
		Store: store,
		Now:   clk.Now,
	})
	return e, clk, store
}

func typeWord(e *Engine, word string) {
	for _, r := range word {
		e.Type(string(r))
	}
}

func TestTypeAndBackspace(t *testing.T) {
	e, clk, _ := newTestEngine(t, []string{"zodis"}, nil)

	e.Type("Z")
	assert.Equal(t, "z", e.Snapshot().Current)
	assert.Equal(t, clk.Now().UnixMilli(), e.Snapshot().StartedAt)

	typeWord(e, "odisx")
	assert.Equal(t, "zodis", e.Snapshot().Current, "input caps at 5 letters")

	e.Type("7")
	e.Type("zz")
	assert.Equal(t, "zodis", e.Snapshot().Current, "non-letters and multi-rune keys ignored")

	e.Backspace()
	assert.Equal(t, "zodi", e.Snapshot().Current)
}

func TestSubmitWin(t *testing.T) {
	e, clk, store := newTestEngine(t, []string{"zodis"}, nil)

	typeWord(e, "zodis")
	clk.Advance(42 * time.Second)
	res, err := e.Submit()
	require.NoError(t, err)

	assert.Equal(t, StatusWon, res.Status)
	assert.True(t, IsWin(res.Attempt))
	assert.Contains(t, res.Message, "Puiku")

	snap := e.Snapshot()
	assert.Equal(t, StatusWon, snap.Status)
	assert.Empty(t, snap.Current)
	assert.Equal(t, int64(42000), snap.BestTimeMs)
	assert.NotZero(t, snap.FinishedAt)
	assert.Equal(t, FeedbackCorrect, snap.Keyboard["z"])

	// Win forwarded to the ledger exactly once.
	ledger := stats.NewLedger(store, "")
	st := ledger.Load()
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 1, st.Wins)
	assert.Equal(t, 1, st.ByAttempts[0])
}

func TestSubmitRejectionLeavesStateUntouched(t *testing.T) {
	e, _, _ := newTestEngine(t, []string{"zodis"}, nil)

	typeWord(e, "xxxxx")
	_, err := e.Submit()
	require.Error(t, err)
	assert.True(t, IsReject(err))
	assert.Contains(t, err.Error(), "Žodyne nėra")

	snap := e.Snapshot()
	assert.Equal(t, "xxxxx", snap.Current, "input preserved for correction")
	assert.Empty(t, snap.Attempts)
	assert.Equal(t, StatusPlaying, snap.Status)
}

func TestLossAfterSixAttempts(t *testing.T) {
	e, _, store := newTestEngine(t, []string{"zodis"}, []string{"vynas"})

	var res *SubmitResult
	for i := 0; i < 6; i++ {
		typeWord(e, "vynas")
		var err error
		res, err = e.Submit()
		require.NoError(t, err)
	}

	assert.Equal(t, StatusLost, res.Status)
	assert.Contains(t, res.Message, "ZODIS")
	snap := e.Snapshot()
	assert.Len(t, snap.Attempts, 6)
	assert.Zero(t, snap.BestTimeMs)

	st := stats.NewLedger(store, "").Load()
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 0, st.Wins)
	assert.Equal(t, 0, st.CurrentStreak)
}

func TestNoMutationAfterTerminal(t *testing.T) {
	e, _, _ := newTestEngine(t, []string{"zodis"}, nil)

	typeWord(e, "zodis")
	_, err := e.Submit()
	require.NoError(t, err)

	e.Type("a")
	assert.Empty(t, e.Snapshot().Current)

	_, err = e.Submit()
	require.Error(t, err)
	assert.True(t, IsReject(err))
	assert.Len(t, e.Snapshot().Attempts, 1)
}

func TestKeyboardHintsNeverDowngrade(t *testing.T) {
	e, _, _ := newTestEngine(t, []string{"zodis"}, []string{"sssss", "kasti"})

	typeWord(e, "sssss") // final s scores correct
	_, err := e.Submit()
	require.NoError(t, err)
	assert.Equal(t, FeedbackCorrect, e.Snapshot().Keyboard["s"])

	typeWord(e, "kasti") // its s scores present only
	_, err = e.Submit()
	require.NoError(t, err)
	assert.Equal(t, FeedbackCorrect, e.Snapshot().Keyboard["s"], "correct never downgrades")
}

func TestHardModeRejectionPreservesInput(t *testing.T) {
	e, _, _ := newTestEngine(t, []string{"zodis"}, []string{"sssss", "kalba"})
	e.ToggleHardMode()

	typeWord(e, "sssss")
	_, err := e.Submit()
	require.NoError(t, err)

	typeWord(e, "kalba") // violates the pinned final S
	_, err = e.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hard Mode")

	snap := e.Snapshot()
	assert.Equal(t, "kalba", snap.Current)
	assert.Len(t, snap.Attempts, 1)
}

func TestHardModeShortGuessGetsLengthMessage(t *testing.T) {
	e, _, _ := newTestEngine(t, []string{"zodis"}, []string{"zebra"})
	e.ToggleHardMode()

	typeWord(e, "zebra") // pins z at position 1
	_, err := e.Submit()
	require.NoError(t, err)

	typeWord(e, "zod")
	_, err = e.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "per trumpas", "length error outranks the pin message")
}

func TestRolloverPreservesBestTimeOnly(t *testing.T) {
	e, clk, store := newTestEngine(t, []string{"zodis"}, nil)
	e.ToggleHardMode()
	typeWord(e, "zodis")
	clk.Advance(30 * time.Second)
	_, err := e.Submit()
	require.NoError(t, err)
	require.Equal(t, int64(30000), e.Snapshot().BestTimeMs)

	// Next day: a new engine over the same blob starts fresh.
	clk.Advance(24 * time.Hour)
	e2 := NewEngine(words.New([]string{"zodis"}, nil), Options{Store: store, Now: clk.Now})
	snap := e2.Snapshot()
	assert.Equal(t, daily.EpochDay(clk.Now()), snap.EpochDay)
	assert.Empty(t, snap.Attempts)
	assert.Equal(t, StatusPlaying, snap.Status)
	assert.Equal(t, int64(30000), snap.BestTimeMs)
	assert.False(t, snap.HardMode)
}

func TestVersionMismatchDiscardsState(t *testing.T) {
	store := storage.NewMemory()
	stale := Game{Version: -1, Status: StatusWon, EpochDay: 1}
	raw, err := Encode(stale)
	require.NoError(t, err)
	store.Set(DefaultStateKey, raw)

	clk := &fakeClock{t: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)}
	e := NewEngine(words.New([]string{"zodis"}, nil), Options{Store: store, Now: clk.Now})
	snap := e.Snapshot()
	assert.Equal(t, StateVersion, snap.Version)
	assert.Equal(t, StatusPlaying, snap.Status)
}

func TestCorruptStateBlobFallsBack(t *testing.T) {
	store := storage.NewMemory()
	store.Set(DefaultStateKey, "{not-json")

	clk := &fakeClock{t: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)}
	e := NewEngine(words.New([]string{"zodis"}, nil), Options{Store: store, Now: clk.Now})
	assert.Equal(t, StatusPlaying, e.Snapshot().Status)
}

func TestNewGameCarriesBestTime(t *testing.T) {
	e, clk, _ := newTestEngine(t, []string{"zodis"}, nil)
	typeWord(e, "zodis")
	clk.Advance(10 * time.Second)
	_, err := e.Submit()
	require.NoError(t, err)

	e.NewGame()
	snap := e.Snapshot()
	assert.Empty(t, snap.Attempts)
	assert.Equal(t, StatusPlaying, snap.Status)
	assert.Equal(t, int64(10000), snap.BestTimeMs)
	assert.Zero(t, snap.StartedAt)
}

func TestGuessDeadlineForfeit(t *testing.T) {
	clk := &fakeClock{t: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)}
	store := storage.NewMemory()
	e := NewEngine(words.New([]string{"zodis"}, nil), Options{
		Store:          store,
		Now:            clk.Now,
		GuessTimeLimit: 30 * time.Second,
	})
	e.ToggleHardMode()

	// No deadline before the first keystroke of a row.
	assert.Nil(t, e.Tick())

	e.Type("z")
	require.NotZero(t, e.Snapshot().GuessDeadline)

	clk.Advance(10 * time.Second)
	assert.Nil(t, e.Tick(), "deadline not reached yet")

	clk.Advance(21 * time.Second)
	res := e.Tick()
	require.NotNil(t, res)
	assert.Equal(t, StatusPlaying, res.Status)
	for _, l := range res.Attempt.Letters {
		assert.Equal(t, FeedbackAbsent, l.State)
	}

	snap := e.Snapshot()
	assert.Len(t, snap.Attempts, 1)
	assert.Empty(t, snap.Current)
	assert.Zero(t, snap.GuessDeadline, "deadline disarmed until next keystroke")
}

func TestBestTimeOnlyDecreases(t *testing.T) {
	e, clk, store := newTestEngine(t, []string{"zodis"}, nil)
	typeWord(e, "zodis")
	clk.Advance(20 * time.Second)
	_, err := e.Submit()
	require.NoError(t, err)
	require.Equal(t, int64(20000), e.Snapshot().BestTimeMs)

	// A slower win the next day must not raise the record.
	clk.Advance(24 * time.Hour)
	e2 := NewEngine(words.New([]string{"zodis"}, nil), Options{Store: store, Now: clk.Now})
	typeWord(e2, "zodis")
	clk.Advance(90 * time.Second)
	_, err = e2.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(20000), e2.Snapshot().BestTimeMs)
}
