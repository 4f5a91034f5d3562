package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the match and simulation HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = cfg.Port
			}
			answers, allowed, err := loadWords()
			if err != nil {
				return err
			}

			deps := httpserver.Deps{
				Store:        store.NewMemoryStore(cfg.SessionCapacity),
				Answers:      answers,
				Allowed:      allowed,
				MaxGuesses:   cfg.MaxGuesses,
				DailySalt:    cfg.DailySalt,
				ClientOrigin: cfg.ClientOrigin,
				Metrics:      metrics.New(),
			}
			if cfg.ResultsDB != "" {
				st, err := results.Open(cfg.ResultsDB)
				if err != nil {
					return err
				}
				defer st.Close()
				deps.Results = st
			}

			srv := httpserver.New(deps)
			log.Info().Str("port", port).Int("answers", answers.Len()).
				Bool("results", deps.Results != nil).Msg("starting wordle server")
			return srv.Start(cmd.Context(), ":"+port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default PORT)")
	return cmd
}
