package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zodislt/wordle-lt/internal/httpserver"
	"github.com/zodislt/wordle-lt/internal/storage"
	"github.com/zodislt/wordle-lt/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lists, err := words.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	store, closeStore := openStore()
	defer func() { _ = closeStore() }()

	srv := httpserver.New(lists, store)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordle-lt server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openStore picks the persistence backend:
//   - DB_PATH set   → SQLite kv store at that path
//   - DATA_DIR set  → file-per-key store under that directory
//   - neither       → in-memory (state lost on restart)
func openStore() (storage.Provider, func() error) {
	noop := func() error { return nil }
	if dsn := os.Getenv("DB_PATH"); dsn != "" {
		store, closeFn, err := storage.NewSQLite(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("path", dsn).Msg("open sqlite store")
		}
		log.Info().Str("path", dsn).Msg("using sqlite storage")
		return store, closeFn
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		store, err := storage.NewFile(dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("open file store")
		}
		log.Info().Str("dir", dir).Msg("using file storage")
		return store, noop
	}
	log.Warn().Msg("no DB_PATH or DATA_DIR set; using in-memory storage")
	return storage.NewMemory(), noop
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
