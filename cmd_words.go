package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words [word...]",
		Short: "Show word list sizes, or check whether words are playable",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, allowed, err := loadWords()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "answers: %d\nallowed: %d\n", answers.Len(), allowed.Len())
				return nil
			}
			for _, w := range args {
				w = strings.ToLower(strings.TrimSpace(w))
				switch {
				case answers.Contains(w):
					fmt.Fprintf(out, "%s: answer\n", w)
				case allowed.Contains(w):
					fmt.Fprintf(out, "%s: allowed guess\n", w)
				default:
					fmt.Fprintf(out, "%s: not a word\n", w)
				}
			}
			return nil
		},
	}
}
