package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Report aggregates a simulation run. Win rate covers completed matches;
// guess statistics cover won matches only.
type Report struct {
	ID            string        `json:"id"`
	Solver        string        `json:"solver"`
	Seed          uint64        `json:"seed"`
	MaxGuesses    int           `json:"maxGuesses"`
	Games         int           `json:"games"`
	Wins          int           `json:"wins"`
	Losses        int           `json:"losses"`
	Failed        int           `json:"failed"`
	WinRate       float64       `json:"winRate"`
	MeanGuesses   float64       `json:"meanGuesses"`
	StdDevGuesses float64       `json:"stdDevGuesses"`
	Distribution  map[int]int   `json:"distribution"`
	Elapsed       time.Duration `json:"elapsedNs"`
	Outcomes      []Outcome     `json:"-"`
}

func summarize(outcomes []Outcome) *Report {
	r := &Report{
		Games:        len(outcomes),
		Distribution: make(map[int]int),
		Outcomes:     outcomes,
	}
	var won []float64
	for _, o := range outcomes {
		switch {
		case o.Failed():
			r.Failed++
		case o.Won:
			r.Wins++
			r.Distribution[o.Guesses]++
			won = append(won, float64(o.Guesses))
		default:
			r.Losses++
		}
	}
	if completed := r.Games - r.Failed; completed > 0 {
		r.WinRate = float64(r.Wins) / float64(completed)
	}
	r.MeanGuesses, r.StdDevGuesses = meanStdDev(won)
	return r
}

// meanStdDev returns the mean and sample standard deviation of xs.
func meanStdDev(xs []float64) (mean, sd float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if len(xs) < 2 {
		return mean, 0
	}
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(ss / float64(len(xs)-1))
}

// String renders the human-readable summary printed by the CLI.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Solver %s, seed %d\n", r.Solver, r.Seed)
	fmt.Fprintf(&sb, "Won %d out of %d matches (%.2f%%)", r.Wins, r.Games-r.Failed, 100*r.WinRate)
	if r.Failed > 0 {
		fmt.Fprintf(&sb, ", %d skipped", r.Failed)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Guesses for win: mean %.3f, stddev %.3f\n", r.MeanGuesses, r.StdDevGuesses)

	keys := make([]int, 0, len(r.Distribution))
	for k := range r.Distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %d: %d\n", k, r.Distribution[k])
	}
	fmt.Fprintf(&sb, "Time taken: %s\n", r.Elapsed.Round(time.Millisecond))
	return sb.String()
}
