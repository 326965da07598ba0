package core

// Action represents a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow - move to the left lane
	ActionMiddle        // Up arrow - move to the middle lane
	ActionRight         // Right arrow - move to the right lane
	ActionQuit          // Q, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionMiddle:
		return "Middle"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
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

// LaneAction returns the lane action set in this frame, or ActionNone.
// If several lane keys arrive in one frame, Right beats Middle beats Left.
func (f InputFrame) LaneAction() Action {
	last := ActionNone
	for _, a := range []Action{ActionLeft, ActionMiddle, ActionRight} {
		if f.Has(a) {
			last = a
		}
	}
	return last
}
