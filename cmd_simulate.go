package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func newSimulateCmd() *cobra.Command {
	var (
		c      sim.Config
		dbPath string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run many solver matches and report win rate and guess statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers, allowed, err := loadWords()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if !f.Changed("games") {
				c.Games = cfg.SimGames
			}
			if !f.Changed("workers") {
				c.Workers = cfg.SimWorkers
			}
			if !f.Changed("seed") {
				c.Seed = cfg.SimSeed
			}
			if !f.Changed("solver") {
				c.Solver = cfg.SimSolver
			}
			if !f.Changed("max-guesses") {
				c.MaxGuesses = cfg.MaxGuesses
			}
			if !f.Changed("db") {
				dbPath = cfg.ResultsDB
			}

			d := &sim.Driver{Answers: answers, Allowed: allowed, Metrics: metrics.New()}
			report, err := d.Run(cmd.Context(), c)
			if err != nil {
				return err
			}

			if dbPath != "" {
				st, err := results.Open(dbPath)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.SaveRun(cmd.Context(), report); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				log.Info().Str("run", report.ID).Str("db", dbPath).Msg("report saved")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			_, err = fmt.Fprintln(out, report.String())
			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&c.Games, "games", "n", 1000, "number of matches (default SIM_GAMES)")
	f.IntVarP(&c.Workers, "workers", "w", 0, "parallel matches (default SIM_WORKERS)")
	f.Uint64Var(&c.Seed, "seed", 0, "PRNG seed (default SIM_SEED, or time-based)")
	f.StringVarP(&c.Solver, "solver", "s", "frequency", "strategy: "+strings.Join(solver.Names(), ", "))
	f.IntVar(&c.MaxGuesses, "max-guesses", 0, "guess budget per match (default MAX_GUESSES)")
	f.StringVar(&dbPath, "db", "", "SQLite file to store the report in (default RESULTS_DB)")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
