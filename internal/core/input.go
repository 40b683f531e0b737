package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionNorth             // W, Up arrow - face/move north
	ActionSouth             // S, Down arrow - face/move south
	ActionEast              // D, Right arrow - face/move east
	ActionWest              // A, Left arrow - face/move west
	ActionRun               // Space - keep going along the corridor
	ActionFlashlight        // F - toggle the flashlight boost
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionEast:
		return "East"
	case ActionWest:
		return "West"
	case ActionRun:
		return "Run"
	case ActionFlashlight:
		return "Flashlight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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
	return f.Actions[a]
}

// Empty returns true if no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
