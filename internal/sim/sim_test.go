package sim

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func defaultDriver(t *testing.T) *Driver {
	t.Helper()
	answers, allowed, err := words.Load("", "")
	require.NoError(t, err)
	return &Driver{Answers: answers, Allowed: allowed}
}

func stripErrs(os []Outcome) []Outcome {
	out := make([]Outcome, len(os))
	for i, o := range os {
		o.Err = nil
		out[i] = o
	}
	return out
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	d := defaultDriver(t)
	for _, name := range solver.Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			serial, err := d.Run(context.Background(), Config{Games: 60, Workers: 1, Seed: 42, Solver: name})
			require.NoError(t, err)
			parallel, err := d.Run(context.Background(), Config{Games: 60, Workers: 8, Seed: 42, Solver: name})
			require.NoError(t, err)

			assert.Equal(t, stripErrs(serial.Outcomes), stripErrs(parallel.Outcomes))
			assert.Equal(t, serial.Wins, parallel.Wins)
			assert.Zero(t, serial.Failed)
			assert.Equal(t, 60, serial.Wins+serial.Losses)
		})
	}
}

func TestRunOutcomesAreConsistent(t *testing.T) {
	d := defaultDriver(t)
	r, err := d.Run(context.Background(), Config{Games: 40, Workers: 4, Seed: 7, Solver: "frequency"})
	require.NoError(t, err)

	for _, o := range r.Outcomes {
		require.True(t, d.Answers.Contains(o.Target))
		require.Len(t, o.Words, o.Guesses)
		require.LessOrEqual(t, o.Guesses, game.DefaultMaxGuesses)
		if o.Won {
			assert.Equal(t, o.Target, o.Words[len(o.Words)-1])
		}
	}
	assert.Greater(t, r.WinRate, 0.5, "frequency solver should win most matches")
	assert.NotEmpty(t, r.ID)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	d := defaultDriver(t)
	a, err := d.Run(context.Background(), Config{Games: 20, Seed: 1, Solver: "random"})
	require.NoError(t, err)
	b, err := d.Run(context.Background(), Config{Games: 20, Seed: 2, Solver: "random"})
	require.NoError(t, err)

	targets := func(r *Report) []string {
		out := make([]string, len(r.Outcomes))
		for i, o := range r.Outcomes {
			out[i] = o.Target
		}
		return out
	}
	assert.NotEqual(t, targets(a), targets(b))
}

// badSolver always proposes a word the match rejects.
type badSolver struct{}

func (badSolver) CreateGuess() (string, error) { return "zzzzz", nil }
func (badSolver) RecordGuess(game.WordGuess) {}

func TestRunSkipsBrokenMatches(t *testing.T) {
	d := defaultDriver(t)
	d.Metrics = metrics.New()
	r, err := d.Run(context.Background(), Config{
		Games:     5,
		Solver:    "bad",
		NewSolver: func(*words.List, *rand.Rand) solver.Solver { return badSolver{} },
	})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Failed)
	assert.Zero(t, r.WinRate)
	for _, o := range r.Outcomes {
		assert.ErrorIs(t, o.Err, game.ErrInvalidWord)
	}
	series, err := testutil.GatherAndCount(d.Metrics.Registry(), "wordle_matches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}

func TestRunRejectsBadConfig(t *testing.T) {
	d := defaultDriver(t)
	_, err := d.Run(context.Background(), Config{Games: 0, Solver: "random"})
	assert.Error(t, err)
	_, err = d.Run(context.Background(), Config{Games: 1, Solver: "entropy"})
	assert.Error(t, err)
	_, err = (&Driver{}).Run(context.Background(), Config{Games: 1, Solver: "random"})
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	d := defaultDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Run(ctx, Config{Games: 100, Solver: "random"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	r := summarize([]Outcome{
		{Won: true, Guesses: 2},
		{Won: true, Guesses: 4},
		{Won: true, Guesses: 6},
		{Won: false, Guesses: 6},
		{Err: game.ErrInvalidWord},
	})
	assert.Equal(t, 5, r.Games)
	assert.Equal(t, 3, r.Wins)
	assert.Equal(t, 1, r.Losses)
	assert.Equal(t, 1, r.Failed)
	assert.InDelta(t, 0.75, r.WinRate, 1e-9)
	assert.InDelta(t, 4.0, r.MeanGuesses, 1e-9)
	assert.InDelta(t, 2.0, r.StdDevGuesses, 1e-9)
	assert.Equal(t, map[int]int{2: 1, 4: 1, 6: 1}, r.Distribution)
	assert.Contains(t, r.String(), "Won 3 out of 4 matches")
}

func TestStreamRandIndependent(t *testing.T) {
	a := streamRand(1, 0, streamTarget).Uint64()
	b := streamRand(1, 0, streamSolver).Uint64()
	c := streamRand(1, 1, streamTarget).Uint64()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, streamRand(1, 0, streamTarget).Uint64())
}
