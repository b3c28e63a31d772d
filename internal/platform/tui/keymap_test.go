package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voxel-cube/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"a", core.ActionAxisNext, false},
		{"tab", core.ActionAxisNext, false},
		{"right", core.ActionSliceNext, false},
		{"l", core.ActionSliceNext, false},
		{"left", core.ActionSlicePrev, false},
		{"h", core.ActionSlicePrev, false},
		{"t", core.ActionTurnCW, false},
		{"enter", core.ActionTurnCW, false},
		{"T", core.ActionTurnCCW, false},
		{"2", core.ActionTurnHalf, false},
		{"s", core.ActionScramble, false},
		{"v", core.ActionSolve, false},
		{"r", core.ActionReset, false},
		{"+", core.ActionSpeedUp, false},
		{"-", core.ActionSpeedDown, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		action, quit := km.MapKey(keyMsg(tc.key))
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("s"), &frame); quit {
		t.Error("scramble key reported as quit")
	}
	if !frame.Has(core.ActionScramble) {
		t.Error("frame missing scramble action")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("quit key not reported as quit")
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.SetCell(0, 1, core.Cell{Rune: 'x', Color: core.ColorGreen})

	out := RenderScreen(s)
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("rendered %d lines, expected 2", lines)
	}
}
