// internal/solver/knowledge.go
//
// Accumulated letter constraints for one match and the candidate filter
// built on them.
//
// Knowledge only grows within a match. Absence is tracked per letter, not per
// position: a letter is absent once a guess shows it only as Unknown.

package solver

import (
	"slices"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Knowledge is what the feedback so far says about the target.
type Knowledge struct {
	correct   map[byte][]int
	misplaced map[byte][]int
	absent    map[byte]struct{}
}

// NewKnowledge returns an empty knowledge state.
func NewKnowledge() *Knowledge {
	k := &Knowledge{}
	k.Reset()
	return k
}

// Reset forgets everything; call it between matches.
func (k *Knowledge) Reset() {
	k.correct = make(map[byte][]int)
	k.misplaced = make(map[byte][]int)
	k.absent = make(map[byte]struct{})
}

// Record folds one guess into the knowledge state. Correct and Mispositioned
// positions are recorded before any Unknown letter is considered, so a
// repeated letter that is Correct in one slot and Unknown in another is
// never marked absent.
func (k *Knowledge) Record(g game.WordGuess) {
	for i := 0; i < g.Len(); i++ {
		c, s := g.At(i)
		switch s {
		case game.Correct:
			k.correct[c] = addPos(k.correct[c], i)
		case game.Mispositioned:
			k.misplaced[c] = addPos(k.misplaced[c], i)
		}
	}
	for i := 0; i < g.Len(); i++ {
		c, s := g.At(i)
		if s == game.Unknown && !k.present(c) {
			k.absent[c] = struct{}{}
		}
	}
}

func addPos(positions []int, i int) []int {
	if slices.Contains(positions, i) {
		return positions
	}
	return append(positions, i)
}

// present reports whether c is known to be in the target.
func (k *Knowledge) present(c byte) bool {
	if _, ok := k.correct[c]; ok {
		return true
	}
	_, ok := k.misplaced[c]
	return ok
}

// Allows reports whether word is consistent with everything recorded.
func (k *Knowledge) Allows(word string) bool {
	for c, positions := range k.correct {
		for _, i := range positions {
			if i >= len(word) || word[i] != c {
				return false
			}
		}
	}
	for c, positions := range k.misplaced {
		if !containsByte(word, c) {
			return false
		}
		for _, i := range positions {
			if i < len(word) && word[i] == c {
				return false
			}
		}
	}
	for c := range k.absent {
		if k.present(c) {
			continue
		}
		if containsByte(word, c) {
			return false
		}
	}
	return true
}

// Filter returns the candidates Allows accepts, in their original order.
// The input slice is not modified.
func (k *Knowledge) Filter(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if k.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}

// Absent returns the letters confirmed absent, sorted.
func (k *Knowledge) Absent() []byte {
	out := make([]byte, 0, len(k.absent))
	for c := range k.absent {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

func containsByte(s string, c byte) bool { return strings.IndexByte(s, c) >= 0 }
