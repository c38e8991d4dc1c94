// Package backend provides the terminal backend abstraction for the
// renderer: real terminals draw through tcell, tests draw into memory.
package backend

import "github.com/dshills/wordstorm/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Key represents a keyboard key. Printable characters arrive as KeyRune
// with the Rune field set.
type Key int

// Key constants for the keys the game reacts to. Everything else maps to
// KeyNone and is ignored by the input translator.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyBackspace
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width, Height int
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or, for tests, to
// an in-memory grid.
type Backend interface {
	// Init initializes the backend. Must be called before any other method.
	Init() error

	// Fini releases backend resources and restores the terminal state.
	// Safe to call on every exit path, including after a failed Init.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Out-of-range positions are ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// HideCursor hides the text cursor.
	HideCursor()

	// PollEvent blocks until the next terminal event.
	PollEvent() Event

	// PostEvent queues a synthetic event, unblocking a pending PollEvent.
	PostEvent(event Event)
}

// Null is an in-memory backend for tests: cells land in a grid that tests
// can read back, and events are fed through a buffered queue.
type Null struct {
	width, height int
	cells         [][]core.Cell
	events        chan Event
	finished      bool
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan Event, 128),
	}
}

func (b *Null) Init() error {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
	return nil
}

func (b *Null) Fini() {
	b.finished = true
}

func (b *Null) Size() (int, int) {
	return b.width, b.height
}

func (b *Null) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *Null) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *Null) Show()       {}
func (b *Null) HideCursor() {}

func (b *Null) PollEvent() Event {
	return <-b.events
}

func (b *Null) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Queue full; drop rather than block a test.
	}
}

// CellAt returns the cell at the given position for assertions.
func (b *Null) CellAt(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// RowString returns the runes of a row as a string, for grid assertions.
func (b *Null) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		runes = append(runes, b.cells[y][x].Rune)
	}
	return string(runes)
}

// Finished reports whether Fini has been called.
func (b *Null) Finished() bool {
	return b.finished
}
