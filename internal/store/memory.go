// internal/store/memory.go
//
// In-memory session store for matches played over HTTP.
//
// Characteristics:
//   - Holds *game.Match values keyed by match ID.
//   - Bounded: once capacity is reached the least recently used match is
//     evicted, so abandoned sessions cannot grow memory without limit.
//   - Concurrency-safe; the LRU cache does its own locking.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// DefaultCapacity is used when NewMemoryStore gets a non-positive capacity.
const DefaultCapacity = 10000

// ErrNotFound is returned by Get for unknown or evicted IDs.
var ErrNotFound = errors.New("store: match not found")

// Store defines the persistence interface for match sessions.
type Store interface {
	// Save persists or refreshes a match.
	Save(ctx context.Context, m *game.Match) error

	// Get retrieves a match by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Match, error)

	// Len reports how many matches are held.
	Len() int
}

type memory struct {
	cache *lru.Cache[string, *game.Match]
}

// NewMemoryStore constructs an LRU-bounded Store.
func NewMemoryStore(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c, err := lru.NewWithEvict(capacity, func(id string, _ *game.Match) {
		log.Debug().Str("match", id).Msg("session evicted")
	})
	if err != nil {
		// only possible for a non-positive size
		panic(err)
	}
	return &memory{cache: c}
}

func (m *memory) Save(_ context.Context, g *game.Match) error {
	if g == nil {
		return errors.New("store: nil match")
	}
	m.cache.Add(g.ID(), g)
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*game.Match, error) {
	if g, ok := m.cache.Get(id); ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int { return m.cache.Len() }
