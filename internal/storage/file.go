// internal/storage/file.go
//
// File-backed Provider: one file per key under a data directory. Keys are
// encoded to URL-safe base64 so arbitrary key strings map to safe filenames.

package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

type fileStore struct {
	dir string
	mu  sync.Mutex // serializes writes within the process
}

// NewFile constructs a Provider persisting each key as a file under dir.
// The directory is created if missing.
func NewFile(dir string) (Provider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir}, nil
}

func (f *fileStore) path(key string) string {
	name := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(key))
	return filepath.Join(f.dir, name+".blob")
}

func (f *fileStore) Get(key string) (string, bool) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		}
		return "", false
	}
	return string(b), true
}

func (f *fileStore) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Write via temp file + rename so readers never observe a partial blob.
	p := f.path(key)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage write failed")
		return
	}
	if err := os.Rename(tmp, p); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage rename failed")
	}
}
