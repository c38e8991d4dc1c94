// Package words loads and serves the two word corpora: the answer pool the
// hidden word is drawn from, and the larger allowed set used for guess
// validation. Lists are loaded once at startup and never mutated, so a
// single Corpus is safely shared by reference without locking.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Embedded defaults keep the game playable with no configuration at all,
// the same way the word lists ship inside the binary.

//go:embed default_answers.txt
var defaultAnswers string

//go:embed default_allowed.txt
var defaultAllowed string

// ErrNoAnswers indicates the answer list ended up empty after loading.
var ErrNoAnswers = errors.New("words: answer list is empty")

// Corpus holds the immutable word lists. Answers are kept ordered for
// uniform selection; the allowed set always contains every answer.
type Corpus struct {
	answers []string
	allowed map[string]struct{}
}

// Load builds a corpus. An empty path falls back to the corresponding
// embedded default list. Lines are lowercased and trimmed; anything that is
// not exactly five ASCII letters is dropped. Loading fails if the answer
// pool ends up empty, since the game cannot start without one.
func Load(answersPath, allowedPath string) (*Corpus, error) {
	answers := parseLines(defaultAnswers)
	allowed := parseLines(defaultAllowed)

	if answersPath != "" {
		list, err := readWordFile(answersPath)
		if err != nil {
			return nil, fmt.Errorf("loading answers: %w", err)
		}
		answers = list
	}
	if allowedPath != "" {
		list, err := readWordFile(allowedPath)
		if err != nil {
			return nil, fmt.Errorf("loading allowed guesses: %w", err)
		}
		allowed = list
	}

	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	c := &Corpus{
		answers: answers,
		allowed: make(map[string]struct{}, len(allowed)+len(answers)),
	}
	for _, w := range allowed {
		c.allowed[w] = struct{}{}
	}
	// Every answer is a valid guess even if the allowed list omits it.
	for _, w := range answers {
		c.allowed[w] = struct{}{}
	}
	return c, nil
}

// Contains reports whether word is an accepted guess.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.allowed[strings.ToLower(word)]
	return ok
}

// Pick returns a uniformly chosen answer. The caller supplies the
// randomness, which keeps selection injectable for deterministic tests.
func (c *Corpus) Pick(intn func(n int) int) string {
	return c.answers[intn(len(c.answers))]
}

// Counts returns the number of loaded answers and allowed guesses.
func (c *Corpus) Counts() (answers, allowed int) {
	return len(c.answers), len(c.allowed)
}

// readWordFile loads one word per line, applying the same normalization as
// the embedded defaults.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// parseLines normalizes an embedded multiline list.
func parseLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalize(line); ok {
			out = append(out, w)
		}
	}
	return out
}

// normalize lowercases and trims a candidate word, rejecting anything that
// is not exactly five ASCII letters.
func normalize(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if len(w) != 5 {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}
	return w, true
}
