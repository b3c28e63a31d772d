package core

import "testing"

func TestProjectorDepthOrdering(t *testing.T) {
	p := NewProjector(1.0) // n = 3

	// The near-top corner (x=2, y=2, z=0) must be closer to the viewer than
	// the far-bottom corner (x=0, y=0, z=2).
	_, _, near := p.Project([3]float64{2, 2, 0})
	_, _, far := p.Project([3]float64{0, 0, 2})
	if near <= far {
		t.Errorf("near depth %f should exceed far depth %f", near, far)
	}
}

func TestProjectorVerticalOrientation(t *testing.T) {
	p := NewProjector(1.0)

	// z = 0 carries the Up face: it must project above (smaller v) z = 2.
	_, top, _ := p.Project([3]float64{1, 1, 0})
	_, bottom, _ := p.Project([3]float64{1, 1, 2})
	if top >= bottom {
		t.Errorf("top face v=%f should be above bottom face v=%f", top, bottom)
	}
}

func TestProjectorCenterIsOrigin(t *testing.T) {
	p := NewProjector(2.0) // n = 5
	u, v, _ := p.Project([3]float64{2, 2, 2})
	if u != 0 || v != 0 {
		t.Errorf("lattice center projects to (%f, %f), expected origin", u, v)
	}
}

func TestProjectorBoundsContainCorners(t *testing.T) {
	const n = 4
	p := NewProjector(float64(n-1) / 2)
	minU, maxU, minV, maxV := p.Bounds(n)

	if minU >= maxU || minV >= maxV {
		t.Fatalf("degenerate bounds: u [%f, %f], v [%f, %f]", minU, maxU, minV, maxV)
	}

	for _, xi := range []int{0, n - 1} {
		for _, yi := range []int{0, n - 1} {
			for _, zi := range []int{0, n - 1} {
				u, v, _ := p.Project([3]float64{float64(xi), float64(yi), float64(zi)})
				if u < minU || u > maxU || v < minV || v > maxV {
					t.Errorf("corner (%d,%d,%d) projects outside bounds", xi, yi, zi)
				}
			}
		}
	}
}

func TestRGBColorCubeCorners(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Color
	}{
		{"black", 0, 0, 0, 16},
		{"white", 1, 1, 1, 231},
		{"red", 1, 0, 0, 196},
		{"green", 0, 1, 0, 46},
		{"blue", 0, 0, 1, 21},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RGBColor(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("RGBColor(%v, %v, %v) = %d, expected %d", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(15, 0, 10) != 10 || Clamp(-5, 0, 10) != 0 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp misbehaves")
	}
	if ClampF(4.5, 0.25, 4.0) != 4.0 || ClampF(0.1, 0.25, 4.0) != 0.25 {
		t.Error("ClampF misbehaves")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max misbehave")
	}
}
