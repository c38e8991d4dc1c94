package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/wordstorm/internal/config"
	"github.com/dshills/wordstorm/internal/game"
	"github.com/dshills/wordstorm/internal/renderer/backend"
	"github.com/dshills/wordstorm/internal/renderer/core"
)

func newTestBoard(t *testing.T, width, height int) (*Board, *backend.Null) {
	t.Helper()
	null := backend.NewNull(width, height)
	if err := null.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(null, DefaultTheme()), null
}

func TestRenderDrawsCenteredGrid(t *testing.T) {
	board, null := newTestBoard(t, 80, 24)

	board.Render(game.Snapshot{})

	top := (24 - boardHeight) / 2
	left := (80 - boardWidth) / 2

	if got := null.CellAt(left, top).Rune; got != '╔' {
		t.Errorf("expected top-left corner ╔, got %q", got)
	}
	if got := null.CellAt(left+boardWidth-1, top).Rune; got != '╗' {
		t.Errorf("expected top-right corner ╗, got %q", got)
	}
	if got := null.CellAt(left, top+boardHeight-1).Rune; got != '╚' {
		t.Errorf("expected bottom-left corner ╚, got %q", got)
	}

	row := null.RowString(top)
	if !strings.Contains(row, gridTop) {
		t.Errorf("expected top border row, got %q", row)
	}
	if rule := null.RowString(top + 2); !strings.Contains(rule, gridRule) {
		t.Errorf("expected rule row, got %q", rule)
	}
}

func TestRenderDrawsScoredGuess(t *testing.T) {
	board, null := newTestBoard(t, 80, 24)

	snap := game.Snapshot{
		Rows: []game.Row{
			{Word: "speed", Marks: game.Score("speed", "erase")},
		},
		Current: "er",
	}
	board.Render(snap)

	top := (24 - boardHeight) / 2
	left := (80 - boardWidth) / 2
	theme := DefaultTheme()

	// First guess row: letters uppercased, colored per mark.
	y := top + 1
	wantLetters := "SPEED"
	wantStyles := []core.Style{
		theme.MarkStyle(game.MarkPresent),
		theme.MarkStyle(game.MarkAbsent),
		theme.MarkStyle(game.MarkPresent),
		theme.MarkStyle(game.MarkPresent),
		theme.MarkStyle(game.MarkAbsent),
	}
	for i := 0; i < game.WordLength; i++ {
		cell := null.CellAt(left+2+4*i, y)
		if cell.Rune != rune(wantLetters[i]) {
			t.Errorf("position %d: expected %q, got %q", i, wantLetters[i], cell.Rune)
		}
		if !cell.Style.Equals(wantStyles[i]) {
			t.Errorf("position %d: expected style %v, got %v", i, wantStyles[i], cell.Style)
		}
	}

	// Current buffer in the next row, unstyled.
	y = top + 3
	if cell := null.CellAt(left+2, y); cell.Rune != 'E' {
		t.Errorf("expected current letter E, got %q", cell.Rune)
	}
	if cell := null.CellAt(left+6, y); cell.Rune != 'R' {
		t.Errorf("expected current letter R, got %q", cell.Rune)
	}
	if cell := null.CellAt(left+2, y); !cell.Style.Equals(core.DefaultStyle()) {
		t.Errorf("expected unstyled current letter, got %v", cell.Style)
	}
}

func TestRenderStatusLine(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want string
	}{
		{
			name: "won",
			snap: game.Snapshot{Outcome: game.Won, Answer: "crane"},
			want: "You won!",
		},
		{
			name: "lost reveals answer",
			snap: game.Snapshot{Outcome: game.Lost, Answer: "llama"},
			want: "The answer was LLAMA.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, null := newTestBoard(t, 80, 24)
			board.Render(tt.snap)

			top := (24 - boardHeight) / 2
			status := null.RowString(top + boardHeight)
			if !strings.Contains(status, tt.want) {
				t.Errorf("expected status %q, got %q", tt.want, status)
			}
		})
	}
}

func TestRenderNoStatusWhilePlaying(t *testing.T) {
	board, null := newTestBoard(t, 80, 24)
	board.Render(game.Snapshot{Outcome: game.InProgress})

	top := (24 - boardHeight) / 2
	if status := strings.TrimSpace(null.RowString(top + boardHeight)); status != "" {
		t.Errorf("expected empty status row, got %q", status)
	}
}

func TestRenderTooSmall(t *testing.T) {
	board, null := newTestBoard(t, 40, 8)
	board.Render(game.Snapshot{})

	found := false
	for y := 0; y < 8; y++ {
		if strings.Contains(null.RowString(y), tooSmallNotice) {
			found = true
		}
	}
	if !found {
		t.Error("expected too-small notice on undersized screen")
	}
}

func TestThemeFromConfig(t *testing.T) {
	theme, err := ThemeFromConfig(config.UI{Correct: "#00FF00", Border: "#FFF"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !theme.Correct.Equals(core.ColorFromRGB(0, 255, 0)) {
		t.Errorf("expected parsed correct color, got %v", theme.Correct)
	}
	if !theme.Border.Equals(core.ColorFromRGB(255, 255, 255)) {
		t.Errorf("expected parsed border color, got %v", theme.Border)
	}
	// Unset slots keep defaults.
	if !theme.Present.Equals(DefaultTheme().Present) {
		t.Errorf("expected default present color, got %v", theme.Present)
	}
}

func TestThemeFromConfigRejectsBadHex(t *testing.T) {
	if _, err := ThemeFromConfig(config.UI{Absent: "not-a-color"}); err == nil {
		t.Fatal("expected error for malformed hex color")
	}
}

func TestMarkStyleMapping(t *testing.T) {
	theme := DefaultTheme()

	if s := theme.MarkStyle(game.MarkCorrect); !s.Foreground.Equals(theme.Correct) {
		t.Errorf("expected correct color, got %v", s.Foreground)
	}
	if s := theme.MarkStyle(game.MarkPresent); !s.Foreground.Equals(theme.Present) {
		t.Errorf("expected present color, got %v", s.Foreground)
	}
	if s := theme.MarkStyle(game.MarkAbsent); !s.Foreground.Equals(theme.Absent) {
		t.Errorf("expected absent color, got %v", s.Foreground)
	}
}
