package layout

import "strconv"

// maxColumnLetters bounds the single-letter column range. Buses wider than
// 26 columns are out of product scope and the engine refuses to wrap.
const maxColumnLetters = 26

// SeatNumber returns the canonical auto-generated number for a position:
// the 1-based row followed by the column letter, so (1,1) is "1A" and
// (12,3) is "12C". It is a pure function of position and the single source
// of truth for generated numbers; ApplyTool calls it on every transition
// into the Seat kind and the uniform generator uses it for every cell.
func SeatNumber(row, column int) (string, error) {
	if row < 1 || column < 1 {
		return "", ErrOutOfBounds
	}
	if column > maxColumnLetters {
		return "", ErrColumnLetters
	}
	return strconv.Itoa(row) + string(rune('A'+column-1)), nil
}
