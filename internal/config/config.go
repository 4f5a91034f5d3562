// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel     string
	Port         string
	ClientOrigin string

	AnswersFile string
	AllowedFile string
	MaxGuesses  int

	SimGames   int
	SimWorkers int
	SimSeed    uint64
	SimSolver  string

	ResultsDB       string
	DailySalt       string
	SessionCapacity int
}

// Load reads .env (if present) and the environment. Unset or unparsable
// numbers fall back to their defaults. A zero SIM_SEED becomes a time-based
// seed.
func Load() Config {
	_ = godotenv.Load()

	c := Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "5175"),
		ClientOrigin:    getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		AnswersFile:     os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:     os.Getenv("WORDS_ALLOWED_FILE"),
		MaxGuesses:      getInt("MAX_GUESSES", 6),
		SimGames:        getInt("SIM_GAMES", 1000),
		SimWorkers:      getInt("SIM_WORKERS", runtime.NumCPU()),
		SimSeed:         getUint("SIM_SEED", 0),
		SimSolver:       getEnv("SIM_SOLVER", "frequency"),
		ResultsDB:       os.Getenv("RESULTS_DB"),
		DailySalt:       getEnv("DAILY_SALT", "local_dev_salt"),
		SessionCapacity: getInt("SESSION_CAPACITY", 10000),
	}
	if c.SimSeed == 0 {
		c.SimSeed = uint64(time.Now().UnixNano())
	}
	return c
}

// ApplyLogLevel sets the global zerolog level; unknown names keep the
// current level.
func (c Config) ApplyLogLevel() {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warn().Str("level", c.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring invalid setting")
		return def
	}
	return n
}

func getUint(k string, def uint64) uint64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring invalid setting")
		return def
	}
	return n
}
