package game

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// WordLength is the number of letters in every answer and guess.
	WordLength = 5

	// MaxGuesses is the number of attempts before the game is lost.
	MaxGuesses = 6
)

// Outcome reports where a game stands.
type Outcome int

const (
	// InProgress means the player still has guesses left.
	InProgress Outcome = iota
	// Won means the most recent guess matched the answer.
	Won
	// Lost means all guesses are spent without a match.
	Lost
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Dictionary reports whether a word is an accepted guess.
// The words package provides the production implementation.
type Dictionary interface {
	Contains(word string) bool
}

// Game holds the state of a single session: the hidden answer, the submitted
// guesses, and the letters buffered for the next guess.
//
// A Game is not safe for concurrent use. The event loop owns it exclusively
// and applies one input event at a time.
type Game struct {
	id      string
	answer  string
	dict    Dictionary
	guesses []string
	current []byte
}

// New creates a game for the given answer. The answer must be a lowercase
// word of WordLength letters; callers normally draw it from the answer
// corpus and tests inject it directly.
func New(dict Dictionary, answer string) *Game {
	return &Game{
		id:     uuid.NewString(),
		answer: strings.ToLower(answer),
		dict:   dict,
	}
}

// ID returns the session identifier used to correlate log entries.
func (g *Game) ID() string {
	return g.id
}

// Input buffers a letter for the next guess. Non-alphabetic runes, a full
// buffer, and finished games are all silently ignored; a tolerant UI has no
// error channel for keystrokes.
func (g *Game) Input(r rune) {
	if g.Outcome() != InProgress {
		return
	}
	if len(g.current) >= WordLength {
		return
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return
	}
	g.current = append(g.current, byte(r))
}

// Erase removes the last buffered letter. Erasing an empty buffer is a no-op.
func (g *Game) Erase() {
	if g.Outcome() != InProgress {
		return
	}
	if len(g.current) > 0 {
		g.current = g.current[:len(g.current)-1]
	}
}

// Submit promotes the buffered letters to a guess. The buffer must hold
// exactly WordLength letters and the word must be in the dictionary;
// otherwise nothing changes and the buffer is kept so the player can correct
// it. Returns whether the guess was accepted.
func (g *Game) Submit() bool {
	if g.Outcome() != InProgress {
		return false
	}
	if len(g.current) != WordLength {
		return false
	}
	word := string(g.current)
	if g.dict == nil || !g.dict.Contains(word) {
		return false
	}
	g.guesses = append(g.guesses, word)
	g.current = g.current[:0]
	return true
}

// Answer reveals the hidden word. It exists for the post-session summary;
// the display learns the answer only through Snapshot, after the game ends.
func (g *Game) Answer() string {
	return g.answer
}

// Outcome reports the game result. A winning guess takes precedence over the
// guess limit, so matching the answer on the final attempt still wins.
func (g *Game) Outcome() Outcome {
	if n := len(g.guesses); n > 0 && g.guesses[n-1] == g.answer {
		return Won
	}
	if len(g.guesses) >= MaxGuesses {
		return Lost
	}
	return InProgress
}
