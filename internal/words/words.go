// internal/words/words.go
//
// Word list management for matches and solvers.
//
// Responsibilities:
//   - Normalise raw newline-delimited word files into sorted, de-duplicated lists.
//   - Provide O(1) membership checks and stable index access for uniform draws.
//   - Resolve the answer/allowed pair from configured files or embedded defaults.
//
// Constraints:
//   • Words must be WordLength alphabetic letters (a–z).
//   • Lists are normalised to lowercase; blank lines and '#' comments are skipped.
//   • A List is read-only once built and safe for concurrent use.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// WordLength is the fixed number of letters in every word.
const WordLength = 5

// ErrEmpty is returned when a list that must hold answers has no valid words.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable, sorted set of words.
type List struct {
	words []string
	index map[string]struct{}
}

// New builds a List from raw words. Invalid entries are dropped silently,
// duplicates are collapsed, and the result is sorted lexicographically.
func New(raw []string) *List {
	index := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		w := normalize(r)
		if !valid(w) {
			continue
		}
		if _, dup := index[w]; dup {
			continue
		}
		index[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return &List{words: out, index: index}
}

// Parse reads one word per line.
func Parse(r io.Reader) (*List, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(raw), nil
}

// LoadFile reads a newline-delimited word file.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return l, nil
}

// Load resolves the answer and allowed lists.
//
//  1. answersPath and allowedPath both set: load each file.
//  2. only allowedPath set: that file serves as both lists.
//  3. neither set: embedded defaults from the assets package.
//
// The returned allowed list always includes every answer.
func Load(answersPath, allowedPath string) (answers, allowed *List, err error) {
	switch {
	case answersPath != "" && allowedPath != "":
		if answers, err = LoadFile(answersPath); err != nil {
			return nil, nil, err
		}
		if allowed, err = LoadFile(allowedPath); err != nil {
			return nil, nil, err
		}
	case allowedPath != "":
		if allowed, err = LoadFile(allowedPath); err != nil {
			return nil, nil, err
		}
		answers = allowed
	default:
		ans, err := assets.AnswersList()
		if err != nil {
			return nil, nil, err
		}
		all, err := assets.AllowedList()
		if err != nil {
			return nil, nil, err
		}
		answers, allowed = New(ans), New(all)
	}

	if answers.Len() == 0 {
		return nil, nil, ErrEmpty
	}
	allowed = allowed.Union(answers)
	log.Debug().Int("answers", answers.Len()).Int("allowed", allowed.Len()).Msg("word lists loaded")
	return answers, allowed, nil
}

// Contains reports whether w is in the list. Case-insensitive.
func (l *List) Contains(w string) bool {
	if l == nil {
		return false
	}
	_, ok := l.index[strings.ToLower(w)]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// At returns the i-th word in sorted order.
func (l *List) At(i int) string { return l.words[i] }

// Words returns a copy of the sorted words.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Union returns a new List holding the words of both lists.
func (l *List) Union(other *List) *List {
	raw := make([]string, 0, l.Len()+other.Len())
	if l != nil {
		raw = append(raw, l.words...)
	}
	if other != nil {
		raw = append(raw, other.words...)
	}
	return New(raw)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func valid(w string) bool {
	return len(w) == WordLength && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
