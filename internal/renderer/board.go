package renderer

import (
	"github.com/dshills/wordstorm/internal/game"
	"github.com/dshills/wordstorm/internal/renderer/backend"
	"github.com/dshills/wordstorm/internal/renderer/core"
)

// Board geometry: five cells of three columns plus borders, one guess row
// between each pair of horizontal rules.
const (
	boardWidth  = 4*game.WordLength + 1
	boardHeight = 2*game.MaxGuesses + 1
)

// Grid furniture, one string per border row kind.
const (
	gridTop    = "╔═══╦═══╦═══╦═══╦═══╗"
	gridCell   = "║   ║   ║   ║   ║   ║"
	gridRule   = "╠═══╬═══╬═══╬═══╬═══╣"
	gridBottom = "╚═══╩═══╩═══╩═══╩═══╝"
)

const tooSmallNotice = "terminal too small"

// Board renders snapshots as a centered guess grid.
type Board struct {
	backend backend.Backend
	theme   Theme
}

// New creates a board renderer drawing to the given backend.
func New(b backend.Backend, theme Theme) *Board {
	return &Board{backend: b, theme: theme}
}

// Render draws the snapshot centered on the screen and flushes it.
func (b *Board) Render(snap game.Snapshot) {
	width, height := b.backend.Size()
	b.backend.Clear()
	b.backend.HideCursor()

	// Two extra rows leave room for the end-of-game status line.
	if width < boardWidth || height < boardHeight+2 {
		b.drawTextCentered(height/2, width, tooSmallNotice, core.DefaultStyle())
		b.backend.Show()
		return
	}

	screen := core.ScreenRect{Bottom: height, Right: width}
	rect := screen.Center(boardHeight, boardWidth)

	b.drawGrid(rect)
	for i, row := range snap.Rows {
		b.drawGuess(rect, i, row)
	}
	b.drawCurrent(rect, snap)
	b.drawStatus(rect, width, snap)

	b.backend.Show()
}

// drawGrid draws the empty board frame.
func (b *Board) drawGrid(rect core.ScreenRect) {
	style := core.NewStyle(b.theme.Border)
	for y := 0; y < boardHeight; y++ {
		var row string
		switch {
		case y == 0:
			row = gridTop
		case y == boardHeight-1:
			row = gridBottom
		case y%2 == 1:
			row = gridCell
		default:
			row = gridRule
		}
		b.drawText(rect.Left, rect.Top+y, row, style)
	}
}

// drawGuess draws a submitted guess into its row, coloring each letter by
// its mark.
func (b *Board) drawGuess(rect core.ScreenRect, row int, guess game.Row) {
	y := rect.Top + 1 + 2*row
	for i := 0; i < len(guess.Word) && i < len(guess.Marks); i++ {
		x := rect.Left + 2 + 4*i
		cell := core.NewStyledCell(upper(rune(guess.Word[i])), b.theme.MarkStyle(guess.Marks[i]))
		b.backend.SetCell(x, y, cell)
	}
}

// drawCurrent draws the partially typed guess in the first empty row,
// unstyled; it has no marks until submitted.
func (b *Board) drawCurrent(rect core.ScreenRect, snap game.Snapshot) {
	if snap.Current == "" || len(snap.Rows) >= game.MaxGuesses {
		return
	}
	y := rect.Top + 1 + 2*len(snap.Rows)
	for i, r := range snap.Current {
		x := rect.Left + 2 + 4*i
		b.backend.SetCell(x, y, core.NewStyledCell(upper(r), core.DefaultStyle()))
	}
}

// drawStatus draws the end-of-game line beneath the board.
func (b *Board) drawStatus(rect core.ScreenRect, width int, snap game.Snapshot) {
	var msg string
	switch snap.Outcome {
	case game.Won:
		msg = "You won!"
	case game.Lost:
		msg = "The answer was " + upperWord(snap.Answer) + "."
	default:
		return
	}
	b.drawTextCentered(rect.Bottom, width, msg, core.DefaultStyle().Bold())
}

func (b *Board) drawText(x, y int, text string, style core.Style) {
	for i, r := range []rune(text) {
		b.backend.SetCell(x+i, y, core.NewStyledCell(r, style))
	}
}

func (b *Board) drawTextCentered(y, width int, text string, style core.Style) {
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	b.drawText(x, y, text, style)
}

func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func upperWord(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = upper(r)
	}
	return string(runes)
}
