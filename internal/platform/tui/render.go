package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voxel-cube/internal/core"
)

// styles holds one lipgloss style per ANSI 256 color. Cubelet colors come
// from the whole 6x6x6 cube, so the full palette is built up front instead
// of a named subset.
var styles [256]lipgloss.Style

func init() {
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c := 1; c < 256; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c)))
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
