// internal/game/match.go
//
// Match state machine for a single Wordle game.
// Responsibilities:
//   - Draw the target uniformly from the answer pool (injectable PRNG).
//   - Validate guesses (length, valid-word set) and reject them after the end.
//   - Score guesses with Evaluate and track playing → won/lost transitions.
//
// A Match is safe for concurrent use; the HTTP layer may touch one session
// from overlapping requests.

package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxGuesses is the classic six-row board.
const DefaultMaxGuesses = 6

// Match holds the state of one game.
type Match struct {
	mu         sync.Mutex
	id         string
	target     string
	maxGuesses int
	allowed    *words.List
	pool       *words.List
	history    []WordGuess
	state      State
}

// Option customises NewMatch.
type Option func(*matchOptions)

type matchOptions struct {
	rng     *rand.Rand
	target  string
	allowed *words.List
}

// WithRand draws the target from rng instead of the global source.
func WithRand(rng *rand.Rand) Option {
	return func(o *matchOptions) { o.rng = rng }
}

// WithTarget fixes the target word. It must belong to the pool.
func WithTarget(word string) Option {
	return func(o *matchOptions) { o.target = strings.ToLower(strings.TrimSpace(word)) }
}

// WithAllowed widens the valid-guess set beyond the answer pool.
func WithAllowed(allowed *words.List) Option {
	return func(o *matchOptions) { o.allowed = allowed }
}

// NewMatch starts a match whose target is drawn from pool.
func NewMatch(pool *words.List, maxGuesses int, opts ...Option) (*Match, error) {
	if pool.Len() == 0 {
		return nil, errors.New("game: empty word pool")
	}
	if maxGuesses < 1 {
		return nil, fmt.Errorf("game: max guesses must be positive, got %d", maxGuesses)
	}
	var o matchOptions
	for _, opt := range opts {
		opt(&o)
	}

	target := o.target
	switch {
	case target == "":
		target = pool.At(draw(o.rng, pool.Len()))
	case !pool.Contains(target):
		return nil, fmt.Errorf("game: target %q: %w", target, ErrInvalidWord)
	}

	return &Match{
		id:         uuid.NewString(),
		target:     target,
		maxGuesses: maxGuesses,
		allowed:    o.allowed,
		pool:       pool,
		history:    make([]WordGuess, 0, maxGuesses),
		state:      InProgress,
	}, nil
}

func draw(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// MakeGuess validates and scores word, returning the full guess history.
//
// Validation rules:
//   - Match must not be over (ErrGameOver).
//   - word must be words.WordLength letters and a valid word (ErrInvalidWord).
//
// State transitions:
//   - all Correct → Won.
//   - else guess count reaches the maximum → Lost.
func (m *Match) MakeGuess(word string) ([]WordGuess, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != InProgress {
		return nil, ErrGameOver
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != words.WordLength {
		return nil, fmt.Errorf("%q must have %d letters: %w", word, words.WordLength, ErrInvalidWord)
	}
	if !m.pool.Contains(word) && !m.allowed.Contains(word) {
		return nil, fmt.Errorf("%q is not in the word list: %w", word, ErrInvalidWord)
	}

	m.history = append(m.history, WordGuess{word: word, states: Evaluate(word, m.target)})
	m.state = StateAfter(m.history, m.maxGuesses)
	return m.guessesLocked(), nil
}

// StateAfter derives the match state from a guess history. Callers holding a
// history returned by MakeGuess use it instead of State, which may already
// reflect later guesses.
func StateAfter(history []WordGuess, maxGuesses int) State {
	switch {
	case len(history) > 0 && history[len(history)-1].IsAllCorrect():
		return Won
	case len(history) >= maxGuesses:
		return Lost
	}
	return InProgress
}

// Snapshot returns the guess history and the state it produced, read together.
func (m *Match) Snapshot() ([]WordGuess, State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.guessesLocked(), m.state
}

// IsGameOver reports whether the match has reached Won or Lost.
func (m *Match) IsGameOver() bool { return m.State() != InProgress }

func (m *Match) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Guesses returns a copy of the guess history.
func (m *Match) Guesses() []WordGuess {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.guessesLocked()
}

func (m *Match) guessesLocked() []WordGuess {
	out := make([]WordGuess, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Match) GuessCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

// Remaining returns how many guesses are left.
func (m *Match) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxGuesses - len(m.history)
}

func (m *Match) ID() string { return m.id }
func (m *Match) Target() string { return m.target }
func (m *Match) MaxGuesses() int { return m.maxGuesses }
func (m *Match) Pool() *words.List { return m.pool }
