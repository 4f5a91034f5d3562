// Package metrics exposes Prometheus instruments for played matches.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeWon    = "won"
	OutcomeLost   = "lost"
	OutcomeFailed = "failed"
)

// Metrics owns a private registry so several instances (tests, servers) can
// coexist. A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg     *prometheus.Registry
	matches *prometheus.CounterVec
	guesses *prometheus.HistogramVec
	runs    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		matches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordle",
			Name:      "matches_total",
			Help:      "Matches played, by solver and outcome.",
		}, []string{"solver", "outcome"}),
		guesses: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wordle",
			Name:      "guesses_to_win",
			Help:      "Guesses needed for won matches.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}, []string{"solver"}),
		runs: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wordle",
			Name:      "simulation_runs_total",
			Help:      "Completed simulation runs.",
		}),
	}
}

// ObserveMatch records one finished match. guesses is only used for wins.
func (m *Metrics) ObserveMatch(solver, outcome string, guesses int) {
	if m == nil {
		return
	}
	m.matches.WithLabelValues(solver, outcome).Inc()
	if outcome == OutcomeWon {
		m.guesses.WithLabelValues(solver).Observe(float64(guesses))
	}
}

// ObserveRun records a completed simulation run.
func (m *Metrics) ObserveRun() {
	if m == nil {
		return
	}
	m.runs.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }
