package core

// Action represents a semantic game event, abstracted from physical key
// presses or gestures. The platform maps raw input to actions; the
// controller only ever sees these.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Arrow/WASD steering - quantized heading north
	ActionDown           // Steering south
	ActionLeft           // Steering west
	ActionRight          // Steering east
	ActionStart          // Start gesture detected / Enter - begin a session from the menu
	ActionRestart        // R - leave GameOver back to the menu
	ActionPause          // P - pause/resume toggle
	ActionMute           // M - mute toggle
	ActionQuit           // Q, Ctrl+C - exit the process
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the discrete events delivered during one simulation tick.
// It is set-valued: delivering the same event twice within a tick collapses
// to a single occurrence, which makes repeated delivery idempotent.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
