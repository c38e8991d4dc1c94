// Package game implements the guessing core: the feedback evaluator and the
// per-session state machine. It owns no terminal or file I/O, which is what
// keeps it testable without a display harness.
package game

// Mark classifies one guess letter against the answer.
type Mark int

const (
	// MarkAbsent means the letter does not appear in the answer, or every
	// occurrence of it is already claimed by another mark.
	MarkAbsent Mark = iota

	// MarkPresent means the answer contains the letter at a different
	// position and still has an unclaimed occurrence of it.
	MarkPresent

	// MarkCorrect means the letter matches the answer at this position.
	MarkCorrect
)

// String returns the string representation of the mark.
func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkPresent:
		return "present"
	case MarkAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// Score evaluates a guess against an answer and returns one mark per letter.
//
// It uses the standard two-pass algorithm. The first pass marks exact matches
// and counts the remaining answer letters. The second pass resolves the other
// positions in left-to-right order: a letter with remaining count is marked
// present and consumes one occurrence, otherwise it is absent. A letter that
// repeats in the guess more times than remain in the answer is therefore
// present only up to the remaining count; later repeats fall through to
// absent.
//
// Both arguments must be lowercase ASCII words of the same length. Length is
// fixed at WordLength everywhere a guess or answer is constructed.
func Score(guess, answer string) []Mark {
	n := len(guess)
	marks := make([]Mark, n)

	// Frequency of answer letters not consumed by exact matches.
	var remaining [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			marks[i] = MarkCorrect
		} else {
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && remaining[j] > 0 {
			marks[i] = MarkPresent
			remaining[j]--
		}
	}

	return marks
}
