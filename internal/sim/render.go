package sim

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/voxel-cube/internal/core"
	"github.com/vovakirdan/voxel-cube/internal/cube"
)

// Classic cube face colors, matching the usual convention: yellow up,
// white down, green front, blue back, orange left, red right.
var faceRGB = []struct {
	face    cube.FaceMask
	r, g, b float64
}{
	{cube.FaceUp, 1.00, 0.84, 0.04},
	{cube.FaceDown, 1.00, 1.00, 1.00},
	{cube.FaceFront, 0.00, 0.65, 0.32},
	{cube.FaceBack, 0.00, 0.34, 1.00},
	{cube.FaceLeft, 1.00, 0.55, 0.00},
	{cube.FaceRight, 1.00, 0.00, 0.19},
}

// maskColor blends the face colors of the set mask bits into one display
// color. The mapping is deterministic: cubelets sharing a mask always get
// the same color. An empty mask cannot occur on a shell cubelet but falls
// back to gray.
func maskColor(m cube.FaceMask) core.Color {
	var r, g, b float64
	n := 0
	for _, fc := range faceRGB {
		if m&fc.face != 0 {
			r += fc.r
			g += fc.g
			b += fc.b
			n++
		}
	}
	if n == 0 {
		return core.ColorGray
	}
	return core.RGBColor(r/float64(n), g/float64(n), b/float64(n))
}

// Render draws the HUD and the projected cube into the screen buffer.
// Cubelets are painted far-to-near so nearer ones overwrite farther ones;
// the selected slice uses a lighter shade so the turn target is visible.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	e.renderHUD(dst)

	top := 2
	bottom := dst.Height() - 2
	if bottom-top < 3 || dst.Width() < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	e.renderCube(dst, top, bottom)
	e.renderHelp(dst)
}

func (e *Engine) renderHUD(dst *core.Screen) {
	st := e.State()
	status := ""
	if st.Solved {
		status = "  SOLVED"
	}
	hud := fmt.Sprintf(" voxel-cube %d³ — axis: %s  slice: %d  moves: %d  queue: %d  speed: %.2fx%s",
		e.lat.Size(), st.SelAxis, st.SelSlice, st.HistoryLen, st.Pending, st.Speed, status)
	if st.Solved {
		dst.DrawTextColored(0, 0, hud, core.ColorGreen)
	} else {
		dst.DrawText(0, 0, hud)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (e *Engine) renderHelp(dst *core.Screen) {
	help := " a axis  ←/→ slice  t turn  2 half  T turn'  s scramble  v solve  r reset  +/- speed  q quit"
	dst.DrawTextColored(0, dst.Height()-1, help, core.ColorGray)
}

type paintOrder struct {
	index int
	depth float64
}

func (e *Engine) renderCube(dst *core.Screen, top, bottom int) {
	proj := core.NewProjector(e.lat.Half())
	minU, maxU, minV, maxV := proj.Bounds(e.lat.Size())

	availW := float64(dst.Width() - 2)
	availH := float64(bottom - top)
	spanU := maxU - minU
	spanV := maxV - minV
	if spanU <= 0 || spanV <= 0 {
		return
	}
	scale := availW / spanU
	if s := availH / spanV; s < scale {
		scale = s
	}
	offU := float64(dst.Width()) / 2
	offV := float64(top) + availH/2

	order := make([]paintOrder, e.lat.Len())
	type projected struct {
		u, v float64
	}
	pts := make([]projected, e.lat.Len())
	for i := 0; i < e.lat.Len(); i++ {
		u, v, depth := proj.Project(e.sched.position(i))
		pts[i] = projected{u: u, v: v}
		order[i] = paintOrder{index: i, depth: depth}
	}
	sort.Slice(order, func(a, b int) bool {
		return order[a].depth < order[b].depth
	})

	selected := e.selectedSet()
	for _, po := range order {
		i := po.index
		x := int(pts[i].u*scale + offU)
		y := int(pts[i].v*scale + offV)
		glyph := '█'
		if selected[i] {
			glyph = '▓'
		}
		dst.SetCell(x, y, core.Cell{Rune: glyph, Color: e.colors[i]})
	}
}

// selectedSet marks the cubelets of the currently selected slice.
// During animation a cubelet may have left the slice logically but still be
// mid-flight; the highlight tracks committed positions, which is what the
// next turn would actually grab.
func (e *Engine) selectedSet() map[int]bool {
	indices, err := e.lat.SliceIndices(e.selAxis, e.selSlice)
	if err != nil {
		return nil
	}
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
