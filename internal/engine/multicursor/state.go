package multicursor

// State is the multi-cursor input routing state.
type State uint8

const (
	// StateIdle routes all input to the native single-caret editing path.
	StateIdle State = iota
	// StateActive intercepts editing keys and routes them through ApplyEdit.
	StateActive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// EventKind classifies a raw input event for the state machine.
type EventKind uint8

const (
	// EventRune is a printable character key.
	EventRune EventKind = iota
	// EventEnter is the Enter key.
	EventEnter
	// EventBackspace is the Backspace key.
	EventBackspace
	// EventDelete is the forward Delete key.
	EventDelete
	// EventArrow is any arrow-key navigation.
	EventArrow
	// EventEscape is the Escape key.
	EventEscape
	// EventClick is an explicit pointer click in the buffer.
	EventClick
	// EventAddCursor requests another occurrence cursor (e.g. Ctrl+D).
	EventAddCursor
)

// InputEvent is a classified input event. Rune is set for EventRune.
type InputEvent struct {
	Kind EventKind
	Rune rune
}

// Action is the effect a transition asks the caller to perform.
type Action uint8

const (
	// ActionNone passes the event through to the native editing path.
	ActionNone Action = iota
	// ActionInsert applies OpInsert with the event's text at every cursor.
	ActionInsert
	// ActionDelete applies OpDelete at every cursor.
	ActionDelete
	// ActionDeleteForward applies OpDeleteForward at every cursor.
	ActionDeleteForward
	// ActionAddOccurrence expands or extends the cursor set.
	ActionAddOccurrence
	// ActionExit clears the cursor set.
	ActionExit
)

// Transition computes the next state and the effect of an input event.
// It is a pure function so the Idle/Active contract can be tested without
// simulating UI events.
func Transition(state State, ev InputEvent) (State, Action) {
	switch state {
	case StateIdle:
		if ev.Kind == EventAddCursor {
			return StateActive, ActionAddOccurrence
		}
		return StateIdle, ActionNone

	case StateActive:
		switch ev.Kind {
		case EventRune, EventEnter:
			return StateActive, ActionInsert
		case EventBackspace:
			return StateActive, ActionDelete
		case EventDelete:
			return StateActive, ActionDeleteForward
		case EventAddCursor:
			return StateActive, ActionAddOccurrence
		case EventArrow, EventEscape, EventClick:
			return StateIdle, ActionExit
		}
	}
	return state, ActionNone
}

// Text returns the text an ActionInsert event contributes.
func (e InputEvent) Text() string {
	if e.Kind == EventEnter {
		return "\n"
	}
	if e.Kind == EventRune && e.Rune != 0 {
		return string(e.Rune)
	}
	return ""
}
