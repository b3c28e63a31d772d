package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voxel-cube/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulator actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "tab":
		return core.ActionAxisNext, false
	case "right", "l":
		return core.ActionSliceNext, false
	case "left", "h":
		return core.ActionSlicePrev, false
	case "t", "enter", " ":
		return core.ActionTurnCW, false
	case "T":
		return core.ActionTurnCCW, false
	case "2":
		return core.ActionTurnHalf, false
	case "s":
		return core.ActionScramble, false
	case "v":
		return core.ActionSolve, false
	case "r":
		return core.ActionReset, false
	case "+", "=":
		return core.ActionSpeedUp, false
	case "-", "_":
		return core.ActionSpeedDown, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
