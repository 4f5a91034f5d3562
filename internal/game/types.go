// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterState: per-letter result of a guess (unknown/mispositioned/correct).
//   - WordGuess:   an evaluated guess, immutable once built.
//   - State:       coarse match lifecycle (playing/won/lost).

package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// LetterState represents the evaluation result for a single letter in a guess.
// Values are ordered by informativeness: Unknown < Mispositioned < Correct.
type LetterState int

const (
	Unknown       LetterState = iota // letter absent, or its budget is used up
	Mispositioned                    // letter in the target at another position
	Correct                          // letter at the right position
)

func (s LetterState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Mispositioned:
		return "mispositioned"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("LetterState(%d)", int(s))
}

// MarshalText encodes the state by name so JSON payloads stay readable.
func (s LetterState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is the lifecycle of a Match.
type State string

const (
	InProgress State = "playing"
	Won        State = "won"
	Lost       State = "lost"
)

var (
	// ErrInvalidWord is returned for guesses of the wrong length or outside
	// the valid-word set. The match is left untouched.
	ErrInvalidWord = errors.New("invalid word")
	// ErrGameOver is returned when guessing after the match has ended.
	ErrGameOver = errors.New("game over")
)

// WordGuess is a guessed word paired with its per-position states.
type WordGuess struct {
	word   string
	states []LetterState
}

// NewWordGuess builds a WordGuess. word and states must have equal length.
func NewWordGuess(word string, states []LetterState) (WordGuess, error) {
	if len(word) != len(states) {
		return WordGuess{}, fmt.Errorf("word %q has %d letters but %d states", word, len(word), len(states))
	}
	cp := make([]LetterState, len(states))
	copy(cp, states)
	return WordGuess{word: word, states: cp}, nil
}

// Word returns the guessed word.
func (g WordGuess) Word() string { return g.word }

// States returns a copy of the per-position states.
func (g WordGuess) States() []LetterState {
	cp := make([]LetterState, len(g.states))
	copy(cp, g.states)
	return cp
}

// At returns the letter and state at position i.
func (g WordGuess) At(i int) (byte, LetterState) { return g.word[i], g.states[i] }

// Len returns the number of positions.
func (g WordGuess) Len() int { return len(g.states) }

// IsAllCorrect reports whether every position is Correct.
func (g WordGuess) IsAllCorrect() bool {
	if len(g.states) == 0 {
		return false
	}
	for _, s := range g.states {
		if s != Correct {
			return false
		}
	}
	return true
}

// Score sums the state ordinals. A winning guess scores 2*Len().
func (g WordGuess) Score() int {
	total := 0
	for _, s := range g.states {
		total += int(s)
	}
	return total
}

func (g WordGuess) String() string {
	return fmt.Sprintf("%s%v", g.word, g.states)
}

type wordGuessJSON struct {
	Word   string        `json:"word"`
	States []LetterState `json:"states"`
}

func (g WordGuess) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordGuessJSON{Word: g.word, States: g.states})
}
