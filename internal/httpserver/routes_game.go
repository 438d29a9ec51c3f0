// internal/httpserver/routes_game.go
//
// Renderer-facing routes. Each endpoint maps one renderer event onto the
// player's engine:
//   - POST /game/key        → type one letter
//   - POST /game/backspace  → delete the last letter
//   - POST /game/submit     → submit the current row
//   - POST /game/new        → fresh game for today (bestTime carried over)
//   - POST /game/hardmode   → toggle Hard Mode
//   - GET  /game/state      → session snapshot (also runs the deadline tick)
//   - GET  /game/share      → result card text
//   - GET  /stats           → the player's stats ledger
//   - GET  /leaderboard     → ranked board + remembered display name
//   - POST /leaderboard     → publish the current win under a name

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zodislt/wordle-lt/internal/game"
	"github.com/zodislt/wordle-lt/internal/leaderboard"
	"github.com/zodislt/wordle-lt/internal/stats"
)

// mountGame registers the game, stats, and leaderboard routes.
func (s *Server) mountGame() {
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/key", s.handleKey)
		r.Post("/backspace", s.handleBackspace)
		r.Post("/submit", s.handleSubmit)
		r.Post("/new", s.handleNewGame)
		r.Post("/hardmode", s.handleHardMode)
		r.Get("/state", s.handleState)
		r.Get("/share", s.handleShare)
	})
	s.r.Get("/stats", s.handleStats)
	s.r.Get("/leaderboard", s.handleLeaderboard)
	s.r.Post("/leaderboard", s.handleLeaderboardAdd)
}

// stateRes is the session snapshot plus display-ready timing strings.
type stateRes struct {
	game.Game
	ElapsedMs int64  `json:"elapsedMs"`
	Elapsed   string `json:"elapsed"`
	BestTime  string `json:"bestTime"`
}

func (s *Server) stateFor(e *game.Engine) stateRes {
	snap := e.Snapshot()
	ms := e.RunningMs()
	return stateRes{
		Game:      snap,
		ElapsedMs: ms,
		Elapsed:   game.FormatDuration(ms),
		BestTime:  game.FormatDuration(snap.BestTimeMs),
	}
}

type keyReq struct {
	Key string `json:"key"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	e := s.engineFor(s.playerID(w, r))
	e.Type(req.Key)
	_ = json.NewEncoder(w).Encode(s.stateFor(e))
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	e := s.engineFor(s.playerID(w, r))
	e.Backspace()
	_ = json.NewEncoder(w).Encode(s.stateFor(e))
}

// submitRes is returned by POST /game/submit.
type submitRes struct {
	Attempt game.Attempt `json:"attempt"`
	Status  game.Status  `json:"status"`
	Message string       `json:"message,omitempty"`
}

// handleSubmit submits the current row. Input rejections (validation or Hard
// Mode) come back as 400 with the user-facing message; the session is
// untouched in that case.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	e := s.engineFor(s.playerID(w, r))
	res, err := e.Submit()
	if err != nil {
		code := http.StatusInternalServerError
		if game.IsReject(err) {
			code = http.StatusBadRequest
		}
		b, _ := json.Marshal(map[string]string{"error": err.Error()})
		http.Error(w, string(b), code)
		return
	}
	_ = json.NewEncoder(w).Encode(submitRes{Attempt: res.Attempt, Status: res.Status, Message: res.Message})
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	e := s.engineFor(s.playerID(w, r))
	e.NewGame()
	_ = json.NewEncoder(w).Encode(s.stateFor(e))
}

func (s *Server) handleHardMode(w http.ResponseWriter, r *http.Request) {
	e := s.engineFor(s.playerID(w, r))
	on := e.ToggleHardMode()
	_ = json.NewEncoder(w).Encode(map[string]bool{"hardMode": on})
}

// handleState returns the snapshot. This is the renderer's polling endpoint,
// so the Hard Mode deadline check runs here: an expired guess is forfeited
// before the snapshot is taken.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	e := s.engineFor(s.playerID(w, r))
	e.Tick()
	_ = json.NewEncoder(w).Encode(s.stateFor(e))
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	e := s.engineFor(s.playerID(w, r))
	origin := r.URL.Query().Get("origin")
	if origin == "" {
		origin = getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"text": game.ShareText(e.Snapshot(), origin)})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	pid := s.playerID(w, r)
	ledger := stats.NewLedger(s.store, stats.DefaultKey+":"+pid)
	_ = json.NewEncoder(w).Encode(ledger.Load())
}

// leaderboardRes is returned by GET /leaderboard.
type leaderboardRes struct {
	Entries  []leaderboard.Entry `json:"entries"`
	LastName string              `json:"lastName,omitempty"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	b := s.boardFor(s.playerID(w, r))
	_ = json.NewEncoder(w).Encode(leaderboardRes{Entries: b.Load(), LastName: b.LastName()})
}

type leaderboardAddReq struct {
	Name string `json:"name"`
}

// handleLeaderboardAdd publishes the player's current win. Only a won
// session may be published; the entry carries the session's attempt count,
// elapsed time, and Hard Mode flag.
func (s *Server) handleLeaderboardAdd(w http.ResponseWriter, r *http.Request) {
	var req leaderboardAddReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, `{"error":"name_required"}`, http.StatusBadRequest)
		return
	}
	pid := s.playerID(w, r)
	snap := s.engineFor(pid).Snapshot()
	if snap.Status != game.StatusWon {
		http.Error(w, `{"error":"not_won"}`, http.StatusBadRequest)
		return
	}
	var timeMs *int64
	if snap.StartedAt > 0 && snap.FinishedAt > snap.StartedAt {
		ms := snap.FinishedAt - snap.StartedAt
		timeMs = &ms
	}
	b := s.boardFor(pid)
	entries := b.Add(leaderboard.Entry{
		Name:     req.Name,
		EpochDay: snap.EpochDay,
		Attempts: len(snap.Attempts),
		TimeMs:   timeMs,
		HardMode: snap.HardMode,
		DateISO:  s.now().UTC().Format(time.RFC3339),
	})
	b.SetLastName(req.Name)
	_ = json.NewEncoder(w).Encode(leaderboardRes{Entries: entries, LastName: req.Name})
}

func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	sol, all := s.lists.Stats()
	_ = json.NewEncoder(w).Encode(map[string]int{"solutions": sol, "allowed": all})
}
