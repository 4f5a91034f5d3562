package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func guess(t *testing.T, word, target string) game.WordGuess {
	t.Helper()
	g, err := game.NewWordGuess(word, game.Evaluate(word, target))
	require.NoError(t, err)
	return g
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "(c)(r)[a] n (e)", Plain(guess(t, "crane", "react")))
	assert.Equal(t, "[c][l][e][a][r]", Plain(guess(t, "clear", "clear")))
}

func TestShare(t *testing.T) {
	gs := []game.WordGuess{guess(t, "crane", "react"), guess(t, "react", "react")}
	assert.Equal(t, "🟨🟨🟩⬛🟨\n🟩🟩🟩🟩🟩", Share(gs))
}

func TestStyledKeepsLetters(t *testing.T) {
	out := Styled(guess(t, "crane", "react"))
	idx := 0
	for _, c := range "CRANE" {
		next := strings.IndexRune(out[idx:], c)
		require.GreaterOrEqual(t, next, 0, "letter %c missing from %q", c, out)
		idx += next
	}
	assert.Len(t, strings.Split(StyledHistory([]game.WordGuess{guess(t, "crane", "react"), guess(t, "react", "react")}), "\n"), 2)
}
