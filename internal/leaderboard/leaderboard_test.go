package leaderboard

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zodislt/wordle-lt/internal/storage"
)

func ms(v int64) *int64 { return &v }

func entry(name string, attempts int, timeMs *int64, hard bool, date string) Entry {
	return Entry{Name: name, EpochDay: 10, Attempts: attempts, TimeMs: timeMs, HardMode: hard, DateISO: date}
}

func TestAddOrdersByTiers(t *testing.T) {
	b := New(storage.NewMemory(), "", "", 0)

	b.Add(entry("Rūta", 3, ms(20000), false, "2025-03-01T10:00:00Z"))
	b.Add(entry("Jonas", 4, ms(5000), true, "2025-03-01T10:00:00Z"))
	b.Add(entry("Aistė", 2, ms(40000), false, "2025-03-01T10:00:00Z"))
	got := b.Add(entry("Tomas", 3, ms(9000), true, "2025-03-01T10:00:00Z"))

	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Name
	}
	// Hard Mode first, then attempts, then time.
	assert.Equal(t, []string{"Tomas", "Jonas", "Aistė", "Rūta"}, names)
}

func TestTieBreaks(t *testing.T) {
	b := New(storage.NewMemory(), "", "", 0)

	b.Add(entry("no-time", 3, nil, false, "2025-03-01T10:00:00Z"))
	b.Add(entry("later", 3, ms(7000), false, "2025-03-02T10:00:00Z"))
	got := b.Add(entry("earlier", 3, ms(7000), false, "2025-03-01T10:00:00Z"))

	require.Len(t, got, 3)
	assert.Equal(t, "earlier", got[0].Name, "equal times break on date")
	assert.Equal(t, "later", got[1].Name)
	assert.Equal(t, "no-time", got[2].Name, "missing time sorts last")
}

func TestBoardTruncatesToLimit(t *testing.T) {
	b := New(storage.NewMemory(), "", "", 0)

	var got []Entry
	for i := 0; i < 60; i++ {
		got = b.Add(entry(fmt.Sprintf("p%02d", i), 3, ms(int64(1000*(i+1))), false, "2025-03-01T10:00:00Z"))
	}
	assert.Len(t, got, DefaultLimit)
	assert.Equal(t, "p00", got[0].Name)
	assert.Equal(t, int64(50000), *got[len(got)-1].TimeMs, "slowest survivors keep rank 50")
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	store := storage.NewMemory()

	// Each publish goes through its own Board value, the way the HTTP layer
	// builds one per request over the shared provider.
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := New(store, "", "", 0)
			b.Add(entry(fmt.Sprintf("p%02d", i), 3, ms(int64(1000*(i+1))), false, "2025-03-01T10:00:00Z"))
		}(i)
	}
	wg.Wait()

	assert.Len(t, New(store, "", "", 0).Load(), 40)
}

func TestLoadCorruptBlobYieldsEmpty(t *testing.T) {
	store := storage.NewMemory()
	store.Set(DefaultKey, "[{broken")
	assert.Empty(t, New(store, "", "", 0).Load())

	store.Set(DefaultKey, "null")
	assert.Empty(t, New(store, "", "", 0).Load())
}

func TestLastName(t *testing.T) {
	b := New(storage.NewMemory(), "", "", 0)

	assert.Empty(t, b.LastName())
	b.SetLastName("  Rūta  ")
	assert.Equal(t, "Rūta", b.LastName())
	b.SetLastName("   ")
	assert.Equal(t, "Rūta", b.LastName(), "blank name does not overwrite")
}
