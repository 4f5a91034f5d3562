// internal/httpserver/routes_sim.go
//
// Simulation endpoints.
//   - POST /simulate    → run a batch of solver matches and return the report
//   - GET  /simulations → recent stored reports (needs a results store)

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
)

// maxSimGames bounds a single request so it fits the handler timeout.
const maxSimGames = 20000

type simulateReq struct {
	Games   int    `json:"games"`
	Solver  string `json:"solver"`
	Seed    uint64 `json:"seed"`
	Workers int    `json:"workers"`
}

func (s *Server) mountSimulations(r chi.Router) {
	r.Post("/simulate", s.handleSimulate)
	r.Get("/simulations", s.handleRecent)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req := simulateReq{Games: 100, Solver: "frequency"}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Games <= 0 || req.Games > maxSimGames {
		writeError(w, http.StatusBadRequest, "games_out_of_range")
		return
	}

	report, err := s.driver.Run(r.Context(), sim.Config{
		Games:      req.Games,
		Workers:    req.Workers,
		MaxGuesses: s.MaxGuesses,
		Seed:       req.Seed,
		Solver:     req.Solver,
	})
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "timeout")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.Results != nil {
		if err := s.Results.SaveRun(r.Context(), report); err != nil {
			log.Warn().Err(err).Str("run", report.ID).Msg("save simulation")
		}
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if s.Results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.Results.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent simulations")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}
