package agent

import "time"

type State int

const (
	StateAwaitingModel State = iota
	StateExecutingTool
	StateDone
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateAwaitingModel:
		return "AWAITING_MODEL"
	case StateExecutingTool:
		return "EXECUTING_TOOL"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// StateChange represents a state transition within one run.
type StateChange struct {
	RunID     string
	FromState State
	ToState   State
	Timestamp time.Time
}

// StateListener observes run state changes.
type StateListener interface {
	OnStateChange(event StateChange)
}

// StateListenerFunc adapts a function to StateListener.
type StateListenerFunc func(event StateChange)

func (f StateListenerFunc) OnStateChange(event StateChange) { f(event) }
