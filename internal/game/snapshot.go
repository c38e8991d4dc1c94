package game

// Row pairs a submitted guess with its per-letter marks.
type Row struct {
	Word  string
	Marks []Mark
}

// Snapshot is the render model handed across the display boundary. The
// display owns geometry and color mapping; the snapshot carries only state.
type Snapshot struct {
	// Rows holds the submitted guesses in order, already scored.
	Rows []Row

	// Current is the partially typed guess, 0 to WordLength letters.
	Current string

	// Outcome is the game state at snapshot time.
	Outcome Outcome

	// Answer is revealed only once the game is over; it is empty while
	// the game is in progress.
	Answer string
}

// Snapshot captures the current state for rendering. Marks are re-derived
// from the stored guesses on each call; scoring six short rows is far
// cheaper than caching would be worth.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:    make([]Row, len(g.guesses)),
		Current: string(g.current),
		Outcome: g.Outcome(),
	}
	for i, guess := range g.guesses {
		snap.Rows[i] = Row{Word: guess, Marks: Score(guess, g.answer)}
	}
	if snap.Outcome != InProgress {
		snap.Answer = g.answer
	}
	return snap
}
