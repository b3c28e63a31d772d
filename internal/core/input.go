package core

// Action represents a semantic puzzle action, abstracted from physical key
// presses. The platform maps keys to actions; the simulation consumes
// actions without knowing the input source.
type Action int

const (
	ActionNone      Action = iota
	ActionAxisNext         // Tab/a - cycle the selected rotation axis
	ActionSliceNext        // Right/l - select the next slice index
	ActionSlicePrev        // Left/h - select the previous slice index
	ActionTurnCW           // Enter/t - turn the selected slice one quarter clockwise
	ActionTurnCCW          // T/backspace - turn three quarters (counter-clockwise)
	ActionTurnHalf         // 2 - turn two quarters (180°)
	ActionScramble         // S - scramble the cube
	ActionSolve            // V - replay the history inverted
	ActionReset            // R - cancel animation, restore solved state
	ActionSpeedUp          // + - raise animation speed
	ActionSpeedDown        // - - lower animation speed
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAxisNext:
		return "AxisNext"
	case ActionSliceNext:
		return "SliceNext"
	case ActionSlicePrev:
		return "SlicePrev"
	case ActionTurnCW:
		return "TurnCW"
	case ActionTurnCCW:
		return "TurnCCW"
	case ActionTurnHalf:
		return "TurnHalf"
	case ActionScramble:
		return "Scramble"
	case ActionSolve:
		return "Solve"
	case ActionReset:
		return "Reset"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
