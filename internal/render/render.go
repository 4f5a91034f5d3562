// Package render turns evaluated guesses into terminal text.
//
// Styled output uses lipgloss: unknown letters are dimmed, mispositioned
// letters highlighted, correct letters emphasised. Plain output marks the
// same states with brackets for logs and dumb terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

var (
	colorDim     = lipgloss.Color("#787C7E")
	colorPresent = lipgloss.Color("#C9B458")
	colorCorrect = lipgloss.Color("#6AAA64")
	colorInk     = lipgloss.Color("#FFFFFF")

	tile = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	styles = map[game.LetterState]lipgloss.Style{
		game.Unknown:       tile.Foreground(colorDim).Bold(false),
		game.Mispositioned: tile.Foreground(colorInk).Background(colorPresent),
		game.Correct:       tile.Foreground(colorInk).Background(colorCorrect),
	}
)

// Style returns the tile style for a letter state.
func Style(s game.LetterState) lipgloss.Style {
	if st, ok := styles[s]; ok {
		return st
	}
	return tile
}

// Styled renders one guess as a row of coloured tiles.
func Styled(g game.WordGuess) string {
	tiles := make([]string, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		c, s := g.At(i)
		tiles = append(tiles, Style(s).Render(strings.ToUpper(string(c))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// StyledHistory renders one row per guess.
func StyledHistory(gs []game.WordGuess) string {
	rows := make([]string, len(gs))
	for i, g := range gs {
		rows[i] = Styled(g)
	}
	return strings.Join(rows, "\n")
}

// Plain renders a guess without colour: [c] correct, (c) mispositioned,
// " c " unknown.
func Plain(g game.WordGuess) string {
	var sb strings.Builder
	for i := 0; i < g.Len(); i++ {
		c, s := g.At(i)
		switch s {
		case game.Correct:
			sb.WriteByte('[')
			sb.WriteByte(c)
			sb.WriteByte(']')
		case game.Mispositioned:
			sb.WriteByte('(')
			sb.WriteByte(c)
			sb.WriteByte(')')
		default:
			sb.WriteByte(' ')
			sb.WriteByte(c)
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Share renders the spoiler-free emoji grid.
func Share(gs []game.WordGuess) string {
	rows := make([]string, len(gs))
	for i, g := range gs {
		var sb strings.Builder
		for _, s := range g.States() {
			switch s {
			case game.Correct:
				sb.WriteString("🟩")
			case game.Mispositioned:
				sb.WriteString("🟨")
			default:
				sb.WriteString("⬛")
			}
		}
		rows[i] = sb.String()
	}
	return strings.Join(rows, "\n")
}
