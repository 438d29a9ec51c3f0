// internal/httpserver/server.go
//
// HTTP host for the Wordle LT engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints mapping renderer events onto the per-player engine:
//     /game/key, /game/backspace, /game/submit, /game/new, /game/hardmode,
//     /game/state, /game/share.
//   - Stats and leaderboard views: /stats, /leaderboard.
//   - Anonymous player sessions via a signed JWT cookie; every player's
//     blobs live under their own key namespace in the storage provider.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the cookie works).
//   - The core never serves the answer; the target word stays server-side.

package httpserver

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/zodislt/wordle-lt/internal/game"
	"github.com/zodislt/wordle-lt/internal/leaderboard"
	"github.com/zodislt/wordle-lt/internal/stats"
	"github.com/zodislt/wordle-lt/internal/storage"
	"github.com/zodislt/wordle-lt/internal/words"
)

// Server bundles the router, word lists, and the shared storage provider.
type Server struct {
	r     *chi.Mux
	lists *words.Lists
	store storage.Provider
	limit time.Duration // hard-mode per-guess limit, 0 = off
	now   func() time.Time

	mu      sync.Mutex
	engines map[string]*game.Engine // keyed by player id
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists, store storage.Provider) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		lists:   lists,
		store:   store,
		limit:   guessLimitFromEnv(),
		now:     time.Now,
		engines: make(map[string]*game.Engine),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-lt","endpoints":["/health","/game/*","/stats","/leaderboard"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleDebugWords)

	s.mountGame()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// engineFor returns (creating if needed) the engine owning pid's session.
func (s *Server) engineFor(pid string) *game.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.engines[pid]; ok {
		return e
	}
	e := game.NewEngine(s.lists, game.Options{
		Store:          s.store,
		Ledger:         stats.NewLedger(s.store, stats.DefaultKey+":"+pid),
		StateKey:       game.DefaultStateKey + ":" + pid,
		Now:            s.now,
		GuessTimeLimit: s.limit,
	})
	s.engines[pid] = e
	return e
}

// boardFor returns pid's leaderboard view: a shared board blob, but the
// remembered display name is per player.
func (s *Server) boardFor(pid string) *leaderboard.Board {
	return leaderboard.New(s.store, "", leaderboard.NameKey+":"+pid, 0)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// guessLimitFromEnv reads the optional Hard Mode per-guess limit.
func guessLimitFromEnv() time.Duration {
	v := os.Getenv("GUESS_TIME_LIMIT_MS")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v + "ms")
	if err != nil || d < 0 {
		return 0
	}
	return d
}
