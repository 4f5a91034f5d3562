// internal/solver/solver.go
//
// Guessing strategies for automated play.
//
// Strategies:
//   - random:    uniform over the full pool every turn; ignores feedback.
//   - filter:    prunes a working candidate set with Knowledge, then picks
//                uniformly from what is left.
//   - frequency: prunes the same way, then picks the candidate whose distinct
//                letters are most common across the remaining set.
//
// A Solver instance belongs to exactly one match; build a new one per match.

package solver

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrNoCandidates means no word is consistent with the feedback so far.
var ErrNoCandidates = errors.New("solver: no candidates left")

// Solver proposes guesses and learns from their feedback.
type Solver interface {
	// CreateGuess returns the next word to play.
	CreateGuess() (string, error)
	// RecordGuess feeds back the evaluated result of a played word.
	RecordGuess(g game.WordGuess)
}

// Factory builds a fresh Solver over pool. rng may be nil for strategies that
// do not draw randomly.
type Factory func(pool *words.List, rng *rand.Rand) Solver

var registry = map[string]Factory{
	"random":    func(p *words.List, r *rand.Rand) Solver { return NewRandom(p, r) },
	"filter":    func(p *words.List, r *rand.Rand) Solver { return NewFiltering(p, r) },
	"frequency": func(p *words.List, _ *rand.Rand) Solver { return NewFrequency(p) },
}

// ByName looks up a strategy factory.
func ByName(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("solver: unknown strategy %q (want one of %v)", name, Names())
	}
	return f, nil
}

// Names lists the registered strategies, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// ----------------------------- random --------------------------------------

// Random is the baseline: any pool word, every turn.
type Random struct {
	pool *words.List
	rng  *rand.Rand
}

func NewRandom(pool *words.List, rng *rand.Rand) *Random {
	return &Random{pool: pool, rng: rng}
}

func (s *Random) CreateGuess() (string, error) {
	if s.pool.Len() == 0 {
		return "", ErrNoCandidates
	}
	return s.pool.At(intn(s.rng, s.pool.Len())), nil
}

func (s *Random) RecordGuess(game.WordGuess) {}

// ----------------------------- pruning -------------------------------------

// pruner owns the shrinking working set shared by the constraint strategies.
// The set starts as the sorted pool and is only ever filtered, never rebuilt.
type pruner struct {
	know       *Knowledge
	candidates []string
}

func newPruner(pool *words.List) pruner {
	return pruner{know: NewKnowledge(), candidates: pool.Words()}
}

func (p *pruner) RecordGuess(g game.WordGuess) {
	p.know.Record(g)
	p.candidates = p.know.Filter(p.candidates)
	if !g.IsAllCorrect() {
		// A word that did not win cannot be the target.
		if i := slices.Index(p.candidates, g.Word()); i >= 0 {
			p.candidates = slices.Delete(p.candidates, i, i+1)
		}
	}
}

// Candidates returns a copy of the current working set.
func (p *pruner) Candidates() []string {
	return slices.Clone(p.candidates)
}

// Knowledge exposes the accumulated constraints.
func (p *pruner) Knowledge() *Knowledge { return p.know }

// Filtering picks uniformly among the surviving candidates.
type Filtering struct {
	pruner
	rng *rand.Rand
}

func NewFiltering(pool *words.List, rng *rand.Rand) *Filtering {
	return &Filtering{pruner: newPruner(pool), rng: rng}
}

func (s *Filtering) CreateGuess() (string, error) {
	if len(s.candidates) == 0 {
		return "", ErrNoCandidates
	}
	return s.candidates[intn(s.rng, len(s.candidates))], nil
}

// Frequency picks the candidate with the most common distinct letters.
type Frequency struct {
	pruner
}

func NewFrequency(pool *words.List) *Frequency {
	return &Frequency{pruner: newPruner(pool)}
}

// CreateGuess returns the highest-scoring candidate. Ties go to the
// lexicographically first word.
func (s *Frequency) CreateGuess() (string, error) {
	if len(s.candidates) == 0 {
		return "", ErrNoCandidates
	}
	counts := letterCounts(s.candidates)
	best, bestScore := "", -1
	for _, w := range s.candidates {
		if sc := scoreWord(w, &counts); sc > bestScore {
			best, bestScore = w, sc
		}
	}
	return best, nil
}

// Score is the relative letter frequency score of word against the current
// working set: the sum, over its distinct letters, of the share of candidates
// containing that letter.
func (s *Frequency) Score(word string) float64 {
	if len(s.candidates) == 0 {
		return 0
	}
	counts := letterCounts(s.candidates)
	return float64(scoreWord(word, &counts)) / float64(len(s.candidates))
}

// letterCounts counts, per letter, the words containing it at least once.
func letterCounts(candidates []string) [256]int {
	var counts [256]int
	for _, w := range candidates {
		var seen [256]bool
		for i := 0; i < len(w); i++ {
			if !seen[w[i]] {
				seen[w[i]] = true
				counts[w[i]]++
			}
		}
	}
	return counts
}

// scoreWord sums raw counts; every candidate shares the same denominator, so
// integer sums rank exactly like the relative frequencies.
func scoreWord(w string, counts *[256]int) int {
	var seen [256]bool
	total := 0
	for i := 0; i < len(w); i++ {
		if !seen[w[i]] {
			seen[w[i]] = true
			total += counts[w[i]]
		}
	}
	return total
}

// Hint replays history into a fresh frequency solver over pool and returns
// its next guess.
func Hint(pool *words.List, history []game.WordGuess) (string, error) {
	s := NewFrequency(pool)
	for _, g := range history {
		s.RecordGuess(g)
	}
	return s.CreateGuess()
}
