package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

type playOptions struct {
	daily      bool
	answer     string
	hint       bool
	plain      bool
	maxGuesses int
}

func newPlayCmd() *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match in the terminal",
		Long: "Play an interactive match. Type a word and press enter to guess,\n" +
			"\"?\" for a hint, or an empty line to give up.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers, allowed, err := loadWords()
			if err != nil {
				return err
			}
			if opts.maxGuesses <= 0 {
				opts.maxGuesses = cfg.MaxGuesses
			}
			if !stdoutIsTerminal() {
				opts.plain = true
			}

			target := strings.ToLower(opts.answer)
			if opts.daily {
				target = daily.Target(time.Now(), cfg.DailySalt, answers)
			}
			m, err := game.NewMatch(answers, opts.maxGuesses, game.WithTarget(target), game.WithAllowed(allowed))
			if err != nil {
				return err
			}
			return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), m, answers, opts)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.daily, "daily", false, "play today's word")
	f.StringVar(&opts.answer, "answer", "", "fixed target word (for practice)")
	f.BoolVar(&opts.hint, "hint", false, "print a solver hint after every guess")
	f.BoolVar(&opts.plain, "plain", false, "render without colour")
	f.IntVar(&opts.maxGuesses, "max-guesses", 0, "guess budget (default MAX_GUESSES)")
	return cmd
}

// playLoop feeds lines from in to m until the match ends or input runs out.
func playLoop(in io.Reader, out io.Writer, m *game.Match, pool *words.List, opts playOptions) error {
	show := render.Styled
	if opts.plain {
		show = render.Plain
	}

	fmt.Fprintf(out, "Guess the %d-letter word in %d tries.\n", words.WordLength, m.MaxGuesses())
	sc := bufio.NewScanner(in)
	for !m.IsGameOver() {
		fmt.Fprintf(out, "%d/%d> ", m.GuessCount()+1, m.MaxGuesses())
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			fmt.Fprintf(out, "Gave up. The word was %s.\n", strings.ToUpper(m.Target()))
			return sc.Err()
		case "?":
			printHint(out, pool, m.Guesses())
			continue
		}

		history, err := m.MakeGuess(line)
		if errors.Is(err, game.ErrInvalidWord) {
			fmt.Fprintf(out, "Not accepted: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, show(history[len(history)-1]))
		if opts.hint && !m.IsGameOver() {
			printHint(out, pool, history)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	switch m.State() {
	case game.Won:
		fmt.Fprintf(out, "Solved in %d/%d!\n\n%s\n", m.GuessCount(), m.MaxGuesses(), render.Share(m.Guesses()))
	case game.Lost:
		fmt.Fprintf(out, "Out of guesses. The word was %s.\n", strings.ToUpper(m.Target()))
	}
	return nil
}

func printHint(out io.Writer, pool *words.List, history []game.WordGuess) {
	guess, err := solver.Hint(pool, history)
	if err != nil {
		fmt.Fprintf(out, "No hint: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Hint: try %s\n", strings.ToUpper(guess))
}
