// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
//   - GET  /daily     → today's date key
//   - POST /daily/new → start a match on today's word
//
// Guesses for a daily match go through POST /game/guess like any other
// match. The word is picked deterministically from date + salt.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"date":       daily.DateKey(s.Now()),
				"wordLength": words.WordLength,
				"maxGuesses": s.MaxGuesses,
			})
		})
		r.Post("/new", s.startDaily)
	})
}

// startDaily creates a match whose target is today's word.
func (s *Server) startDaily(w http.ResponseWriter, r *http.Request) {
	now := s.Now()
	target := daily.Target(now, s.DailySalt, s.Answers)
	if target == "" {
		writeError(w, http.StatusServiceUnavailable, "no_words")
		return
	}
	s.startMatch(w, r, target, daily.DateKey(now))
}
