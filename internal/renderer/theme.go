// Package renderer draws game snapshots onto a display backend. It owns all
// geometry, centering, and the mapping from letter marks to colors; the
// game core hands it nothing but a snapshot.
package renderer

import (
	"fmt"

	"github.com/dshills/wordstorm/internal/config"
	"github.com/dshills/wordstorm/internal/game"
	"github.com/dshills/wordstorm/internal/renderer/core"
)

// Theme maps letter marks and board furniture to colors.
type Theme struct {
	Correct core.Color
	Present core.Color
	Absent  core.Color
	Border  core.Color
}

// DefaultTheme returns the conventional green/yellow/grey scheme with the
// terminal's default color for the grid.
func DefaultTheme() Theme {
	return Theme{
		Correct: core.ColorGreen,
		Present: core.ColorYellow,
		Absent:  core.ColorGray,
		Border:  core.ColorDefault,
	}
}

// ThemeFromConfig builds a theme from the configured hex colors. Empty
// entries keep the default for that slot.
func ThemeFromConfig(ui config.UI) (Theme, error) {
	theme := DefaultTheme()

	slots := []struct {
		hex  string
		dst  *core.Color
		name string
	}{
		{ui.Correct, &theme.Correct, "correct"},
		{ui.Present, &theme.Present, "present"},
		{ui.Absent, &theme.Absent, "absent"},
		{ui.Border, &theme.Border, "border"},
	}
	for _, slot := range slots {
		if slot.hex == "" {
			continue
		}
		c, err := core.ColorFromHex(slot.hex)
		if err != nil {
			return theme, fmt.Errorf("ui.%s: %w", slot.name, err)
		}
		*slot.dst = c
	}
	return theme, nil
}

// MarkStyle returns the style for a letter with the given mark.
func (t Theme) MarkStyle(m game.Mark) core.Style {
	switch m {
	case game.MarkCorrect:
		return core.NewStyle(t.Correct).Bold()
	case game.MarkPresent:
		return core.NewStyle(t.Present).Bold()
	default:
		return core.NewStyle(t.Absent)
	}
}
