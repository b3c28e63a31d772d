package core

// Projector maps continuous 3D lattice positions onto 2D screen
// coordinates with a fixed isometric basis. The camera sits above the
// (+x, +y) diagonal looking down at the lattice center, matching the
// default viewpoint of the cube: the Up face (z = 0) is visible at the top
// of the screen.
//
// The returned coordinates are unscaled; the renderer fits them to the
// actual screen rectangle. Depth increases toward the viewer and is used
// for painter's-order drawing (far cubelets first).
type Projector struct {
	half float64
}

// NewProjector creates a projector for a lattice pivoting on half = (n-1)/2.
func NewProjector(half float64) Projector {
	return Projector{half: half}
}

// Project returns the unscaled screen position (u, v) and the depth of a
// continuous lattice point. u grows rightward, v grows downward.
func (p Projector) Project(pos [3]float64) (u, v, depth float64) {
	x := pos[0] - p.half
	y := pos[1] - p.half
	z := pos[2] - p.half

	// Terminal cells are roughly twice as tall as wide, so the horizontal
	// axis is stretched by 2 to keep the cube visually square.
	u = (x - y) * 2.0
	v = z*0.95 + (x+y)*0.45
	depth = x + y - z
	return u, v, depth
}

// Bounds returns the extreme projected coordinates for a lattice of size n,
// used to fit the projection into the screen.
func (p Projector) Bounds(n int) (minU, maxU, minV, maxV float64) {
	first := true
	for _, xi := range []int{0, n - 1} {
		for _, yi := range []int{0, n - 1} {
			for _, zi := range []int{0, n - 1} {
				u, v, _ := p.Project([3]float64{float64(xi), float64(yi), float64(zi)})
				if first {
					minU, maxU, minV, maxV = u, u, v, v
					first = false
					continue
				}
				if u < minU {
					minU = u
				}
				if u > maxU {
					maxU = u
				}
				if v < minV {
					minV = v
				}
				if v > maxV {
					maxV = v
				}
			}
		}
	}
	return minU, maxU, minV, maxV
}
