package cube

import (
	"fmt"
	"strconv"
	"strings"
)

// Move rotates the slice perpendicular to Axis at Index by Quarters
// quarter-turns in the fixed positive rotation sense of that axis.
// Quarters is kept in 0..3; a value of 0 is a documented no-op, never an
// error.
type Move struct {
	Axis     Axis
	Index    int
	Quarters int
}

// Normalized returns the move with Quarters reduced modulo 4.
// Negative counts wrap the same way, so -1 means three quarter-turns.
func (m Move) Normalized() Move {
	m.Quarters = ((m.Quarters % 4) + 4) % 4
	return m
}

// IsNoop reports whether the normalized move leaves the lattice unchanged.
func (m Move) IsNoop() bool {
	return m.Normalized().Quarters == 0
}

// Inverse returns the move that undoes this one:
// the quarter count becomes (4 - (q mod 4)) mod 4.
func (m Move) Inverse() Move {
	q := m.Normalized().Quarters
	return Move{Axis: m.Axis, Index: m.Index, Quarters: (4 - q) % 4}
}

// Notation renders the move in big-cube slice notation: the slice index,
// the axis letter, and a turn suffix.
// Examples: 0x (90°), 4y2 (180°), 12z' (270°).
func (m Move) Notation() string {
	suffix := ""
	switch m.Normalized().Quarters {
	case 0:
		suffix = "0" // no-op, round-trips through ParseMove
	case 2:
		suffix = "2"
	case 3:
		suffix = "'"
	}
	return fmt.Sprintf("%d%s%s", m.Index, m.Axis, suffix)
}

func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses slice notation produced by Notation.
// The form is <index><axis>[suffix]: "0x", "4y2", "12z'".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits == len(s) {
		return Move{}, ErrInvalidNotation
	}

	index, err := strconv.Atoi(s[:digits])
	if err != nil {
		return Move{}, ErrInvalidNotation
	}

	axis, err := ParseAxis(s[digits : digits+1])
	if err != nil {
		return Move{}, ErrInvalidNotation
	}

	quarters := 1
	switch s[digits+1:] {
	case "":
		quarters = 1
	case "2":
		quarters = 2
	case "'", "`":
		quarters = 3
	case "0":
		quarters = 0
	default:
		return Move{}, ErrInvalidNotation
	}

	return Move{Axis: axis, Index: index, Quarters: quarters}, nil
}

// ParseMoves parses a space-separated move sequence, e.g. "0x 4y2 12z'".
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, part)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// History is the append-only record of user and scramble turns.
// Programmatic solve replay is never recorded here.
type History struct {
	moves []Move
}

// Record normalizes the move and appends it unless it is a no-op.
// A 4-quarter turn must not be recorded: replaying it inverted would break
// round-trip inversion. Returns whether the move was kept.
func (h *History) Record(m Move) bool {
	m = m.Normalized()
	if m.Quarters == 0 {
		return false
	}
	h.moves = append(h.moves, m)
	return true
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the recorded sequence in chronological order.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Inverse returns the sequence that undoes the history: reverse
// chronological order, each move inverted, no-ops omitted. Applying the
// history and then its inverse restores the exact pre-history lattice.
func (h *History) Inverse() []Move {
	out := make([]Move, 0, len(h.moves))
	for i := len(h.moves) - 1; i >= 0; i-- {
		inv := h.moves[i].Inverse()
		if inv.Quarters == 0 {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// Clear drops all recorded moves.
func (h *History) Clear() {
	h.moves = h.moves[:0]
}
