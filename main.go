// Command wordle plays, solves and simulates Wordle.
//
//	wordle play [--daily] [--hint]
//	wordle simulate --games 1000 --solver frequency --seed 42
//	wordle serve
//	wordle words [word...]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// cfg is filled before any subcommand runs.
var cfg config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Play, solve and simulate Wordle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg = config.Load()
			setupLogging(cfg)
		},
	}
	root.AddCommand(newPlayCmd(), newSimulateCmd(), newServeCmd(), newWordsCmd())
	return root
}

// setupLogging applies LOG_LEVEL and switches to the console writer when
// stderr is a terminal.
func setupLogging(c config.Config) {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	c.ApplyLogLevel()
}

// loadWords loads the configured word lists, falling back to the embedded
// defaults.
func loadWords() (answers, allowed *words.List, err error) {
	return words.Load(cfg.AnswersFile, cfg.AllowedFile)
}

// stdoutIsTerminal decides between styled and plain rendering.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
