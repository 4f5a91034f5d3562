package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveMatch(t *testing.T) {
	m := New()
	m.ObserveMatch("frequency", OutcomeWon, 3)
	m.ObserveMatch("frequency", OutcomeWon, 4)
	m.ObserveMatch("frequency", OutcomeLost, 6)
	m.ObserveRun()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.matches.WithLabelValues("frequency", OutcomeWon)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches.WithLabelValues("frequency", OutcomeLost)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs))
	assert.Equal(t, 1, testutil.CollectAndCount(m.guesses))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveMatch("random", OutcomeWon, 1)
		m.ObserveRun()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveMatch("filter", OutcomeWon, 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `wordle_matches_total{outcome="won",solver="filter"} 1`)
}
