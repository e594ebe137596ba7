package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - steer left (held)
	ActionRight          // Right arrow, D, L - steer right (held)
	ActionUp             // Up arrow, W, K - steer up (held)
	ActionDown           // Down arrow, S, J - steer down (held)
	ActionConfirm        // Space, Enter - advance to the next screen
	ActionPause          // P - pause/unpause while running
	ActionQuit           // Q, Ctrl+C - exit session
)

// Directions lists the level-triggered steering actions in a fixed order.
var Directions = []Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the steering actions.
func (a Action) IsDirection() bool {
	return a == ActionLeft || a == ActionRight || a == ActionUp || a == ActionDown
}

// InputFrame represents the input state during one simulation tick.
// Presses are edge-triggered: delivered once per physical key press.
// Held actions are level-triggered: true for every tick the key is down.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool
	// Holding maps steering actions to whether they are currently held.
	Holding map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holding: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if a == ActionNone {
		return
	}
	if f.Holding == nil {
		f.Holding = make(map[Action]bool)
	}
	f.Holding[a] = true
}

// Held returns true if the given action is held down this frame.
func (f InputFrame) Held(a Action) bool {
	if f.Holding == nil {
		return false
	}
	return f.Holding[a]
}

// Clear resets all presses and holds for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Holding {
		delete(f.Holding, k)
	}
}
