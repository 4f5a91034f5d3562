package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(d))
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := d.Add(6 * time.Hour)
	assert.Equal(t, WordIndex(d, "salt", 100), WordIndex(later, "salt", 100))
	assert.Equal(t, 0, WordIndex(d, "salt", 0))

	for i := 0; i < 50; i++ {
		idx := WordIndex(d.AddDate(0, 0, i), "salt", 7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
	}
}

func TestTarget(t *testing.T) {
	pool := words.New([]string{"crane", "slate", "glass"})
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got := Target(d, "salt", pool)
	assert.True(t, pool.Contains(got))
	assert.Equal(t, got, Target(d, "salt", pool))
	assert.Equal(t, "", Target(d, "salt", words.New(nil)))
}
