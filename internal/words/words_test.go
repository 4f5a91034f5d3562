package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalises(t *testing.T) {
	l := New([]string{"Crane\n", " slate ", "crane", "toolong", "abc", "cl3ar", ""})
	assert.Equal(t, []string{"crane", "slate"}, l.Words())
	assert.True(t, l.Contains("CRANE"))
	assert.False(t, l.Contains("clear"))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "slate", l.At(1))
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	l, err := Parse(strings.NewReader("# header\nglass\n\nsassy\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"glass", "sassy"}, l.Words())
}

func TestWordsReturnsCopy(t *testing.T) {
	l := New([]string{"crane"})
	ws := l.Words()
	ws[0] = "zzzzz"
	assert.Equal(t, "crane", l.At(0))
}

func TestNilList(t *testing.T) {
	var l *List
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("crane"))
	assert.Equal(t, []string{"crane"}, l.Union(New([]string{"crane"})).Words())
}

func writeWords(t *testing.T, name string, ws ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(ws, "\n")+"\n"), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("both files", func(t *testing.T) {
		ans := writeWords(t, "answers.txt", "crane", "slate")
		all := writeWords(t, "allowed.txt", "adieu")
		answers, allowed, err := Load(ans, all)
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "slate"}, answers.Words())
		assert.Equal(t, []string{"adieu", "crane", "slate"}, allowed.Words())
	})

	t.Run("allowed only", func(t *testing.T) {
		all := writeWords(t, "allowed.txt", "adieu", "crane")
		answers, allowed, err := Load("", all)
		require.NoError(t, err)
		assert.Equal(t, answers.Words(), allowed.Words())
	})

	t.Run("embedded defaults", func(t *testing.T) {
		answers, allowed, err := Load("", "")
		require.NoError(t, err)
		assert.Greater(t, answers.Len(), 100)
		assert.Greater(t, allowed.Len(), answers.Len())
		for _, w := range answers.Words() {
			require.True(t, allowed.Contains(w), w)
		}
	})

	t.Run("empty answers", func(t *testing.T) {
		ans := writeWords(t, "answers.txt", "# nothing")
		all := writeWords(t, "allowed.txt", "crane")
		_, _, err := Load(ans, all)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load("", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}
