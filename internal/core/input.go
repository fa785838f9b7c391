package core

// Action represents a semantic button, abstracted from physical key presses.
// Hosts translate keys into actions; the simulation only sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - run left
	ActionRight        // D, Right arrow - run right
	ActionJump         // Space - jump (held for higher jumps)
	ActionUp           // W, Up arrow - reserved
	ActionDown         // S, Down arrow - reserved
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the button state for a single simulation tick.
// An action present in the frame is held down for that tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
