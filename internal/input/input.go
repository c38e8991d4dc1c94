// Package input defines the abstract events the game core consumes and the
// translation from raw terminal events. The core never sees key codes; it
// only sees letters, erasures, submissions, and quit requests.
package input

import "github.com/dshills/wordstorm/internal/renderer/backend"

// Kind identifies the abstract event type.
type Kind int

const (
	// KindOther covers every event the game does not react to.
	KindOther Kind = iota
	// KindLetter carries one typed letter in Rune.
	KindLetter
	// KindBackspace erases the last buffered letter.
	KindBackspace
	// KindSubmit submits the buffered guess.
	KindSubmit
	// KindQuit ends the session.
	KindQuit
	// KindRedraw asks the loop to re-render (terminal resize).
	KindRedraw
)

// Event is one abstract input event.
type Event struct {
	Kind Kind
	Rune rune
}

// Translate maps a terminal event onto the game's event vocabulary.
// Printable non-letter runes fall through to KindOther; the game ignores
// them by policy rather than by error.
func Translate(ev backend.Event) Event {
	switch ev.Type {
	case backend.EventKey:
		return translateKey(ev)
	case backend.EventResize:
		return Event{Kind: KindRedraw}
	case backend.EventInterrupt:
		return Event{Kind: KindQuit}
	default:
		return Event{Kind: KindOther}
	}
}

func translateKey(ev backend.Event) Event {
	switch ev.Key {
	case backend.KeyEscape:
		return Event{Kind: KindQuit}
	case backend.KeyEnter:
		return Event{Kind: KindSubmit}
	case backend.KeyBackspace:
		return Event{Kind: KindBackspace}
	case backend.KeyRune:
		r := ev.Rune
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return Event{Kind: KindLetter, Rune: r}
		}
		return Event{Kind: KindOther}
	default:
		return Event{Kind: KindOther}
	}
}
