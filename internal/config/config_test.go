package config

import (
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MAX_GUESSES", "SIM_GAMES", "SIM_WORKERS", "SIM_SEED", "SIM_SOLVER", "RESULTS_DB", "SESSION_CAPACITY"} {
		t.Setenv(k, "")
	}
	c := Load()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 6, c.MaxGuesses)
	assert.Equal(t, 1000, c.SimGames)
	assert.Equal(t, runtime.NumCPU(), c.SimWorkers)
	assert.Equal(t, "frequency", c.SimSolver)
	assert.NotZero(t, c.SimSeed)
	assert.Empty(t, c.ResultsDB)
	assert.Equal(t, 10000, c.SessionCapacity)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_GUESSES", "8")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("SIM_SOLVER", "random")
	t.Setenv("SIM_GAMES", "nope")
	t.Setenv("RESULTS_DB", "./data/results.db")

	c := Load()
	assert.Equal(t, 8, c.MaxGuesses)
	assert.Equal(t, uint64(42), c.SimSeed)
	assert.Equal(t, "random", c.SimSolver)
	assert.Equal(t, 1000, c.SimGames)
	assert.Equal(t, "./data/results.db", c.ResultsDB)
}

func TestApplyLogLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	Config{LogLevel: "warn"}.ApplyLogLevel()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	Config{LogLevel: "shouting"}.ApplyLogLevel()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
