package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProvider(t *testing.T) {
	s := NewMemory()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", "v1")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	s.Set("k", "v2")
	v, _ = s.Get("k")
	assert.Equal(t, "v2", v, "set overwrites")
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	// Keys with separators and unicode still map to safe filenames.
	key := "wordle-lt:state/ąčę"
	s.Set(key, `{"status":"playing"}`)
	v, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, `{"status":"playing"}`, v)

	// A second provider over the same directory sees the data.
	s2, err := NewFile(dir)
	require.NoError(t, err)
	v, ok = s2.Get(key)
	require.True(t, ok)
	assert.Equal(t, `{"status":"playing"}`, v)
}
