// Package assets embeds the default answer and allowed-guess word lists used
// when no word files are configured.
package assets

import (
	"bufio"
	"bytes"
	"embed"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// rawLines returns the file's lines untouched; normalisation belongs to the
// words package.
func rawLines(name string) ([]string, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func AnswersList() ([]string, error) {
	return rawLines("answers.txt")
}

func AllowedList() ([]string, error) {
	return rawLines("allowed.txt")
}
