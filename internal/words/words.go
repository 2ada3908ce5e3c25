// internal/words/words.go
//
// Word source for the round engine.
//
// Responsibilities:
//   - Load the secret-word list from an explicit file or fall back to the
//     embedded default list.
//   - Normalize entries (trim, upper-case, skip blanks and # comments) and
//     keep only words written entirely in the supported alphabet.
//   - Supply a uniform random draw for round setup.
//
// The list is an explicit immutable value handed to the session loop at
// startup. An empty result is a setup error (ErrEmptyList) surfaced before
// any round exists, never a round-logic error.
package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

//go:embed words_ru.txt
var embeddedWords string

// ErrEmptyList reports that a word source yielded no usable words.
var ErrEmptyList = errors.New("words: list is empty")

// List is an immutable collection of candidate secret words.
type List struct {
	words []string
}

// Load builds a List from the file at path, or from the embedded default
// list when path is empty. Returns ErrEmptyList (wrapped) when no usable
// words survive filtering.
func Load(path string) (*List, error) {
	var lines []string
	if path == "" {
		lines = strings.Split(embeddedWords, "\n")
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("words: open %s: %w", path, err)
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("words: read %s: %w", path, err)
		}
	}

	list := normalizeLines(lines)
	if len(list) == 0 {
		if path == "" {
			return nil, ErrEmptyList
		}
		return nil, fmt.Errorf("%w (%s)", ErrEmptyList, path)
	}
	return &List{words: list}, nil
}

// normalizeLines trims, upper-cases, and filters raw lines down to valid
// secret words: at least two letters, all from the supported alphabet.
func normalizeLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		w := strings.ToUpper(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if isSupportedWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// isSupportedWord reports whether w is made only of uppercase Russian
// letters (А–Я or Ё) and is long enough to be worth guessing.
func isSupportedWord(w string) bool {
	n := 0
	for _, c := range w {
		if (c < 'А' || c > 'Я') && c != 'Ё' {
			return false
		}
		n++
	}
	return n >= 2
}

// Random returns a uniformly drawn word from the list.
func (l *List) Random() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	return l.words[nBig.Int64()]
}

// Len reports how many words the list holds.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the underlying list.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}
