// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/metrics".
//   - Match endpoints: POST /game/new, POST /game/guess, GET /game/{id},
//     GET /game/{id}/hint, GET /game/{id}/share.
//   - Daily endpoints mounted under /daily (routes_daily.go).
//   - Simulation endpoints: POST /simulate, GET /simulations (routes_sim.go).
//
// Matches live in the session store only; nothing about a played match is
// written to the database.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// RunStore persists simulation reports. *results.Store implements it.
type RunStore interface {
	SaveRun(ctx context.Context, r *sim.Report) error
	Recent(ctx context.Context, limit int) ([]results.Run, error)
}

// Deps are the collaborators a Server needs. Metrics and Results may be nil.
type Deps struct {
	Store        store.Store
	Answers      *words.List
	Allowed      *words.List
	MaxGuesses   int
	DailySalt    string
	ClientOrigin string
	Metrics      *metrics.Metrics
	Results      RunStore

	// Now is the clock for the daily word; defaults to time.Now.
	Now func() time.Time
}

// Server bundles router and dependencies.
type Server struct {
	r *chi.Mux
	Deps
	driver *sim.Driver
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.MaxGuesses <= 0 {
		d.MaxGuesses = game.DefaultMaxGuesses
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.ClientOrigin == "" {
		d.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{
		r:      chi.NewRouter(),
		Deps:   d,
		driver: &sim.Driver{Answers: d.Answers, Allowed: d.Allowed, Metrics: d.Metrics},
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time, simulations included
	s.r.Use(jsonContentType)
	s.r.Use(cors(d.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-solver",
			"endpoints": []string{
				"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}",
				"GET /game/{id}/hint", "GET /game/{id}/share", "GET /daily", "POST /daily/new",
				"POST /simulate", "GET /simulations", "/metrics",
			},
			"solvers": solver.Names(),
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{
			"answers":  s.Answers.Len(),
			"allowed":  s.Allowed.Len(),
			"sessions": s.Store.Len(),
		})
	})
	if s.Metrics != nil {
		s.r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	// --- matches ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetGame)
		r.Get("/hint", s.handleHint)
		r.Get("/share", s.handleShare)
	})

	s.mountDaily(s.r)
	s.mountSimulations(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID     string `json:"gameId"`
	MaxGuesses int    `json:"maxGuesses"`
	WordLength int    `json:"wordLength"`
	Date       string `json:"date,omitempty"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	switch req.Mode {
	case "", "random":
		s.startMatch(w, r, strings.ToLower(strings.TrimSpace(req.Answer)), "")
	case "daily":
		s.startDaily(w, r)
	default:
		writeError(w, http.StatusBadRequest, "unknown_mode")
	}
}

// startMatch creates and stores a match. An empty target draws one at random.
func (s *Server) startMatch(w http.ResponseWriter, r *http.Request, target, date string) {
	m, err := game.NewMatch(s.Answers, s.MaxGuesses, game.WithTarget(target), game.WithAllowed(s.Allowed))
	if err != nil {
		if errors.Is(err, game.ErrInvalidWord) {
			writeError(w, http.StatusBadRequest, "invalid_word")
			return
		}
		log.Error().Err(err).Msg("new match")
		writeError(w, http.StatusInternalServerError, "new_match_failed")
		return
	}
	if err := s.Store.Save(r.Context(), m); err != nil {
		log.Error().Err(err).Msg("save match")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("match", m.ID()).Str("date", date).Msg("match started")
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:     m.ID(),
		MaxGuesses: m.MaxGuesses(),
		WordLength: words.WordLength,
		Date:       date,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Guesses []game.WordGuess `json:"guesses"`
	State   game.State       `json:"state"`
	Answer  string           `json:"answer,omitempty"` // revealed once the match is over
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	m, err := s.Store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	history, err := m.MakeGuess(req.Guess)
	switch {
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case errors.Is(err, game.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	case err != nil:
		log.Error().Err(err).Str("match", m.ID()).Msg("guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}
	if err := s.Store.Save(r.Context(), m); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	state := game.StateAfter(history, m.MaxGuesses())
	switch state {
	case game.Won:
		s.Metrics.ObserveMatch("human", metrics.OutcomeWon, len(history))
	case game.Lost:
		s.Metrics.ObserveMatch("human", metrics.OutcomeLost, len(history))
	}
	writeJSON(w, http.StatusOK, s.matchView(m, history, state))
}

func (s *Server) matchView(m *game.Match, history []game.WordGuess, state game.State) guessRes {
	res := guessRes{Guesses: history, State: state}
	if state != game.InProgress {
		res.Answer = m.Target()
	}
	return res
}

// lookup resolves the {id} URL parameter, writing a 404 on miss.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*game.Match, bool) {
	m, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return m, true
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	history, state := m.Snapshot()
	writeJSON(w, http.StatusOK, s.matchView(m, history, state))
}

// handleHint suggests the frequency solver's next guess for the match so far.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if m.IsGameOver() {
		writeError(w, http.StatusConflict, "game_over")
		return
	}
	guess, err := solver.Hint(s.Answers, m.Guesses())
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			writeError(w, http.StatusUnprocessableEntity, "no_candidates")
			return
		}
		writeError(w, http.StatusInternalServerError, "hint_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"guess": guess})
}

// handleShare returns the emoji grid of a finished match.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if !m.IsGameOver() {
		writeError(w, http.StatusConflict, "in_progress")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"share": render.Share(m.Guesses())})
}
