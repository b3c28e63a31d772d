// Package cube models the shell of an N×N×N rotation puzzle: only the
// cubelets visible on the outer surface exist, each carrying a fixed face
// mask and an integer position that changes under slice rotations.
// The package contains no UI dependencies so the model stays pure and
// testable.
package cube

// FaceMask is a bitset of the faces a cubelet exposed on the solved lattice.
// It is assigned once at construction and never changes afterwards: the mask
// is a label used for display color, not a transformed sticker. Only the
// cubelet's position moves.
type FaceMask uint8

const (
	FaceUp FaceMask = 1 << iota
	FaceDown
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
)

// Count returns how many faces are set in the mask (1 for face centers,
// 2 for edges, 3 for corners).
func (m FaceMask) Count() int {
	n := 0
	for b := FaceUp; b <= FaceRight; b <<= 1 {
		if m&b != 0 {
			n++
		}
	}
	return n
}

// Vec is an exact integer lattice point. Every committed cubelet position is
// a Vec within [0, n-1]^3; floating point exists only inside the rotation
// engine's rotate-then-round step.
type Vec [3]int

// Axis identifies the axis a slice rotates about.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// ParseAxis converts "x", "y" or "z" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	default:
		return AxisX, ErrInvalidAxis
	}
}

// Lattice owns the cubelet positions and masks for one puzzle session.
// Cubelet identity is the index into the construction-ordered slices; the
// index never changes, only the coordinate stored at it.
//
// Coordinate storage is exclusively owned: accessors hand out copies, and
// the only mutators are RotateSlice and Reset.
type Lattice struct {
	n      int
	half   float64
	coords []Vec
	masks  []FaceMask
	solved []Vec
}

// New builds the shell lattice for an n×n×n cube. Cubelets are created in
// z,y,x ascending order so index-based references are reproducible.
func New(n int) (*Lattice, error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}

	l := &Lattice{
		n:    n,
		half: float64(n-1) / 2.0,
	}

	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if x != 0 && x != n-1 && y != 0 && y != n-1 && z != 0 && z != n-1 {
					continue // interior, never visible
				}
				l.coords = append(l.coords, Vec{x, y, z})

				var mask FaceMask
				if z == 0 {
					mask |= FaceUp
				}
				if z == n-1 {
					mask |= FaceDown
				}
				if y == 0 {
					mask |= FaceFront
				}
				if y == n-1 {
					mask |= FaceBack
				}
				if x == 0 {
					mask |= FaceLeft
				}
				if x == n-1 {
					mask |= FaceRight
				}
				l.masks = append(l.masks, mask)
			}
		}
	}

	l.solved = make([]Vec, len(l.coords))
	copy(l.solved, l.coords)
	return l, nil
}

// Size returns the edge length n.
func (l *Lattice) Size() int {
	return l.n
}

// Half returns the rotation pivot (n-1)/2, shared by all slice axes.
func (l *Lattice) Half() float64 {
	return l.half
}

// Len returns the number of shell cubelets: n³ - (n-2)³.
func (l *Lattice) Len() int {
	return len(l.coords)
}

// Coord returns the current position of cubelet i.
func (l *Lattice) Coord(i int) Vec {
	return l.coords[i]
}

// Mask returns the immutable face mask of cubelet i.
func (l *Lattice) Mask(i int) FaceMask {
	return l.masks[i]
}

// Coords returns a copy of all current cubelet positions in identity order.
func (l *Lattice) Coords() []Vec {
	out := make([]Vec, len(l.coords))
	copy(out, l.coords)
	return out
}

// SliceIndices returns the indices of every cubelet whose coordinate along
// axis equals index. For a fixed axis the slices over index 0..n-1 partition
// the shell.
func (l *Lattice) SliceIndices(axis Axis, index int) ([]int, error) {
	if axis < AxisX || axis > AxisZ {
		return nil, ErrInvalidAxis
	}
	if index < 0 || index >= l.n {
		return nil, ErrSliceOutOfRange
	}

	var out []int
	for i, c := range l.coords {
		if c[axis] == index {
			out = append(out, i)
		}
	}
	return out, nil
}

// Reset restores every cubelet to its solved position. Identity and masks
// are untouched.
func (l *Lattice) Reset() {
	copy(l.coords, l.solved)
}

// Solved reports whether every cubelet sits exactly on its solved position.
func (l *Lattice) Solved() bool {
	for i, c := range l.coords {
		if c != l.solved[i] {
			return false
		}
	}
	return true
}
