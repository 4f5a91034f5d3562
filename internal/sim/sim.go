// internal/sim/sim.go
//
// Simulation driver: plays many independent matches with one solver strategy
// and aggregates win rate and guess-count statistics.
//
// Responsibilities:
//   - Fan matches out over a bounded errgroup worker pool.
//   - Derive independent target/solver PRNG streams per match from (seed, index),
//     so a run is reproducible whatever the worker count.
//   - Log and skip a match that misbehaves instead of aborting the run.
//
// Each worker owns its match and solver and writes a single slot of the
// outcomes slice, so no locking is needed.

package sim

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config describes one simulation run.
type Config struct {
	Games      int    `json:"games"`
	Workers    int    `json:"workers"`
	MaxGuesses int    `json:"maxGuesses"`
	Seed       uint64 `json:"seed"`
	Solver     string `json:"solver"`

	// NewSolver overrides the Solver name lookup when set.
	NewSolver solver.Factory `json:"-"`
}

// Outcome is the result of one simulated match.
type Outcome struct {
	Index   int      `json:"index"`
	Target  string   `json:"target"`
	Won     bool     `json:"won"`
	Guesses int      `json:"guesses"`
	Words   []string `json:"words"`
	Err     error    `json:"-"`
}

// Failed reports whether the match was skipped because of an anomaly.
func (o Outcome) Failed() bool { return o.Err != nil }

// Driver plays matches drawn from Answers; guesses are validated against
// Allowed as well. Metrics may be nil.
type Driver struct {
	Answers *words.List
	Allowed *words.List
	Metrics *metrics.Metrics
}

// Run plays cfg.Games matches and summarises them. Only context cancellation
// or a bad config ends a run early.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("sim: games must be positive, got %d", cfg.Games)
	}
	if d.Answers.Len() == 0 {
		return nil, errors.New("sim: empty answer pool")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.MaxGuesses <= 0 {
		cfg.MaxGuesses = game.DefaultMaxGuesses
	}
	newSolver := cfg.NewSolver
	if newSolver == nil {
		f, err := solver.ByName(cfg.Solver)
		if err != nil {
			return nil, err
		}
		newSolver = f
	}

	log.Info().Int("games", cfg.Games).Int("workers", cfg.Workers).
		Str("solver", cfg.Solver).Uint64("seed", cfg.Seed).Msg("simulation started")

	start := time.Now()
	outcomes := make([]Outcome, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Games {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = d.play(i, newSolver, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := summarize(outcomes)
	r.ID = uuid.NewString()
	r.Solver = cfg.Solver
	r.Seed = cfg.Seed
	r.MaxGuesses = cfg.MaxGuesses
	r.Elapsed = time.Since(start)
	d.Metrics.ObserveRun()

	log.Info().Str("run", r.ID).Int("wins", r.Wins).Int("failed", r.Failed).
		Float64("winRate", r.WinRate).Float64("mean", r.MeanGuesses).
		Dur("elapsed", r.Elapsed).Msg("simulation finished")
	return r, nil
}

// play runs one match to completion.
func (d *Driver) play(i int, newSolver solver.Factory, cfg Config) Outcome {
	out := Outcome{Index: i}
	defer func() { d.observe(cfg.Solver, out) }()

	m, err := game.NewMatch(d.Answers, cfg.MaxGuesses,
		game.WithRand(streamRand(cfg.Seed, i, streamTarget)),
		game.WithAllowed(d.Allowed))
	if err != nil {
		out.Err = err
		return out
	}
	out.Target = m.Target()
	s := newSolver(d.Answers, streamRand(cfg.Seed, i, streamSolver))

	for !m.IsGameOver() {
		guess, err := s.CreateGuess()
		if err != nil {
			out.Err = fmt.Errorf("create guess: %w", err)
			break
		}
		history, err := m.MakeGuess(guess)
		if err != nil {
			out.Err = fmt.Errorf("guess %q: %w", guess, err)
			break
		}
		out.Words = append(out.Words, guess)
		s.RecordGuess(history[len(history)-1])
	}
	out.Won = m.State() == game.Won
	out.Guesses = m.GuessCount()
	return out
}

func (d *Driver) observe(solverName string, out Outcome) {
	switch {
	case out.Failed():
		log.Warn().Err(out.Err).Int("match", out.Index).Str("target", out.Target).
			Msg("skipping match")
		d.Metrics.ObserveMatch(solverName, metrics.OutcomeFailed, out.Guesses)
	case out.Won:
		d.Metrics.ObserveMatch(solverName, metrics.OutcomeWon, out.Guesses)
	default:
		d.Metrics.ObserveMatch(solverName, metrics.OutcomeLost, out.Guesses)
	}
}

const (
	streamTarget byte = iota
	streamSolver
)

// streamRand derives an independent PCG stream for (seed, match, stream).
func streamRand(seed uint64, match int, stream byte) *rand.Rand {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(match))
	buf[16] = stream
	sum := blake2b.Sum256(buf[:])
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	))
}
