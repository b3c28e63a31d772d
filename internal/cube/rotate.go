package cube

import "math"

// This file is the only place in the repository that touches floating point.
// A committed rotation is float rotate + integer re-snap: positions are
// translated so the pivot is the lattice center, rotated with the standard
// right-handed 90° matrix, translated back and rounded to the nearest
// integer before storing. cos and sin of 90° multiples are exactly {0, ±1},
// and the final round guarantees repeated rotations never accumulate drift:
// rotate⁴ is the identity on the integer lattice.

// RotatePoint rotates lattice point p by angle radians about the given axis,
// pivoting on half = (n-1)/2. The result is a continuous position used by
// the animation layer; it is never written back into a Lattice.
func RotatePoint(axis Axis, angle, half float64, p Vec) [3]float64 {
	px := float64(p[0]) - half
	py := float64(p[1]) - half
	pz := float64(p[2]) - half

	c := math.Cos(angle)
	s := math.Sin(angle)

	var nx, ny, nz float64
	switch axis {
	case AxisX:
		nx = px
		ny = c*py - s*pz
		nz = s*py + c*pz
	case AxisY:
		nx = c*px + s*pz
		ny = py
		nz = -s*px + c*pz
	default: // AxisZ
		nx = c*px - s*py
		ny = s*px + c*py
		nz = pz
	}

	return [3]float64{nx + half, ny + half, nz + half}
}

// RotateSlice commits exactly one 90° rotation of the slice at index about
// axis, in direction dir ∈ {+1, -1}. Only the selected cubelets are written;
// after the call every coordinate is an exact integer again.
func (l *Lattice) RotateSlice(axis Axis, index, dir int) error {
	if dir != 1 && dir != -1 {
		return ErrInvalidDirection
	}
	indices, err := l.SliceIndices(axis, index)
	if err != nil {
		return err
	}

	angle := float64(dir) * math.Pi / 2.0
	for _, i := range indices {
		p := RotatePoint(axis, angle, l.half, l.coords[i])
		l.coords[i] = Vec{
			int(math.Round(p[0])),
			int(math.Round(p[1])),
			int(math.Round(p[2])),
		}
	}
	return nil
}

// Apply commits a whole move as successive quarter-turn rotations.
// Used by tests and the scramble CLI; the interactive path goes through the
// scheduler one quarter-turn at a time.
func (l *Lattice) Apply(m Move) error {
	m = m.Normalized()
	for q := 0; q < m.Quarters; q++ {
		if err := l.RotateSlice(m.Axis, m.Index, 1); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll commits a move sequence in order.
func (l *Lattice) ApplyAll(moves []Move) error {
	for _, m := range moves {
		if err := l.Apply(m); err != nil {
			return err
		}
	}
	return nil
}
