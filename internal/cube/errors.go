package cube

import "errors"

// Sentinel errors for the cube package. All validation fails fast at the
// API boundary; none of these leave the lattice or a move sequence partially
// mutated.
var (
	ErrInvalidSize      = errors.New("cube: lattice size must be at least 2")
	ErrInvalidAxis      = errors.New("cube: axis must be x, y or z")
	ErrSliceOutOfRange  = errors.New("cube: slice index out of range")
	ErrInvalidDirection = errors.New("cube: rotation direction must be +1 or -1")
	ErrInvalidMoveCount = errors.New("cube: scramble move count must be at least 1")
	ErrInvalidNotation  = errors.New("cube: invalid move notation")
)
